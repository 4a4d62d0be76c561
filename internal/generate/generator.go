// Package generate produces prompt text for a card and drives the
// generation flow of the detail view.
package generate

import (
	"context"
	"math/rand"
	"time"
)

// Defaults for the simulated generation.
const (
	DefaultDelay          = 1500 * time.Millisecond
	DefaultRevealInterval = 80 * time.Millisecond
)

// Generator returns a canned prompt after an artificial processing delay.
type Generator struct {
	delay time.Duration
	texts []string
	pick  func(n int) int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithDelay sets the artificial delay. Zero disables it.
func WithDelay(d time.Duration) GeneratorOption {
	return func(g *Generator) {
		if d >= 0 {
			g.delay = d
		}
	}
}

// WithTexts replaces the built-in prompt texts. An empty list is ignored.
func WithTexts(texts []string) GeneratorOption {
	return func(g *Generator) {
		if len(texts) > 0 {
			g.texts = append([]string(nil), texts...)
		}
	}
}

// WithPicker replaces the random index source. pick must return a value in
// [0, n).
func WithPicker(pick func(n int) int) GeneratorOption {
	return func(g *Generator) { g.pick = pick }
}

// NewGenerator returns a Generator over the built-in texts.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		delay: DefaultDelay,
		texts: promptTexts,
		pick:  rand.Intn,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Texts returns the texts the generator picks from.
func (g *Generator) Texts() []string {
	return append([]string(nil), g.texts...)
}

// Generate waits out the delay and returns a randomly chosen prompt. It
// returns ctx.Err() if ctx ends first.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}
	return g.texts[g.pick(len(g.texts))], nil
}
