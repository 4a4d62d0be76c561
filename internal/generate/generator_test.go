package generate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestGeneratePicksFromTexts(t *testing.T) {
	g := NewGenerator(WithDelay(0), WithPicker(func(n int) int { return n - 1 }))

	got, err := g.Generate(context.Background())
	require.NoError(t, err)
	texts := g.Texts()
	assert.Equal(t, texts[len(texts)-1], got)
	assert.Len(t, texts, 10)
}

func TestGenerateDefaultPickerStaysInRange(t *testing.T) {
	g := NewGenerator(WithDelay(0), WithTexts([]string{"a", "b"}))

	for i := 0; i < 50; i++ {
		got, err := g.Generate(context.Background())
		require.NoError(t, err)
		assert.Contains(t, []string{"a", "b"}, got)
	}
}

func TestGenerateHonoursCancellation(t *testing.T) {
	g := NewGenerator(WithDelay(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Generate(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateWaitsForDelay(t *testing.T) {
	g := NewGenerator(WithDelay(20 * time.Millisecond))

	start := time.Now()
	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestWords(t *testing.T) {
	assert.Nil(t, Words(""))
	assert.Equal(t, []string{"neon", "lights,", "wet", "streets"}, Words("neon lights, wet streets"))
}

func TestRevealFrames(t *testing.T) {
	defer goleak.VerifyNone(t)

	var frames []string
	for f := range Reveal(context.Background(), "soft golden light", time.Millisecond) {
		frames = append(frames, f)
	}
	assert.Equal(t, []string{"soft", "soft golden", "soft golden light"}, frames)
}

func TestRevealZeroInterval(t *testing.T) {
	defer goleak.VerifyNone(t)

	var last string
	count := 0
	for f := range Reveal(context.Background(), "a b c d", 0) {
		last = f
		count++
	}
	assert.Equal(t, 4, count)
	assert.Equal(t, "a b c d", last)
}

func TestRevealEmptyText(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, ok := <-Reveal(context.Background(), "", time.Millisecond)
	assert.False(t, ok)
}

func TestRevealCancelledStopsWithoutLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	frames := Reveal(ctx, "one two three four five", time.Hour)

	first := <-frames
	assert.Equal(t, "one", first)
	cancel()

	for range frames {
	}
}

func TestRevealAbandonedReaderCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	_ = Reveal(ctx, "nobody reads this", 0)
	cancel()

	// Give the goroutine a moment to observe cancellation.
	time.Sleep(10 * time.Millisecond)
}
