package cli

import (
	"testing"
	"time"

	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/masadraza1122/pixalpromt/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFreeFresh(t *testing.T) {
	app := newTestApp(t, nil)
	cmd, buf := newTestCmd()

	require.NoError(t, runStatus(cmd, app))

	out := buf.String()
	assert.Contains(t, out, "Free")
	assert.Contains(t, out, "0 of 3 used today")
	assert.Contains(t, out, "Remaining:")
	assert.Contains(t, out, "13h 30m")
	assert.NotContains(t, out, "Daily limit reached")
}

func TestStatusLimitReached(t *testing.T) {
	store := kvstore.NewMemoryStoreWith(map[string]string{
		entitlement.KeyPromptsUsed:   "3",
		entitlement.KeyLastResetDate: "2026-03-14",
	})
	app := newTestApp(t, store)
	cmd, buf := newTestCmd()

	require.NoError(t, runStatus(cmd, app))

	out := buf.String()
	assert.Contains(t, out, "3 of 3 used today")
	assert.Contains(t, out, "Daily limit reached")
}

func TestStatusPremium(t *testing.T) {
	store := kvstore.NewMemoryStoreWith(map[string]string{
		entitlement.KeyPremium: "true",
	})
	app := newTestApp(t, store)
	cmd, buf := newTestCmd()

	require.NoError(t, runStatus(cmd, app))

	out := buf.String()
	assert.Contains(t, out, "Premium")
	assert.Contains(t, out, "unlimited")
	assert.NotContains(t, out, "used today")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"negative", -time.Minute, "less than a minute"},
		{"seconds", 30 * time.Second, "less than a minute"},
		{"minutes", 45 * time.Minute, "45m"},
		{"hours", 2 * time.Hour, "2h"},
		{"mixed", 13*time.Hour + 30*time.Minute + 20*time.Second, "13h 30m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}
