package cli

import (
	"context"
	"testing"

	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/masadraza1122/pixalpromt/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugResetConfirmed(t *testing.T) {
	store := kvstore.NewMemoryStoreWith(map[string]string{
		entitlement.KeyPremium:       "true",
		entitlement.KeyPromptsUsed:   "2",
		entitlement.KeyLastResetDate: "2026-03-14",
	})
	app := newTestApp(t, store)
	cmd, buf := newTestCmd()

	require.NoError(t, runDebugReset(cmd, app, AlwaysYes()))

	assert.False(t, app.Tracker.IsPremium())
	assert.Equal(t, 0, app.Tracker.PromptsUsedToday())
	snap := store.Snapshot()
	assert.NotContains(t, snap, entitlement.KeyPremium)
	assert.NotContains(t, snap, entitlement.KeyPromptsUsed)
	assert.NotContains(t, snap, entitlement.KeyLastResetDate)
	assert.Contains(t, buf.String(), "entitlement state reset")
}

func TestDebugResetThenReload(t *testing.T) {
	store := kvstore.NewMemoryStoreWith(map[string]string{entitlement.KeyPremium: "true"})
	app := newTestApp(t, store)
	cmd, _ := newTestCmd()
	require.NoError(t, runDebugReset(cmd, app, AlwaysYes()))

	reloaded := newTestApp(t, store)

	assert.False(t, reloaded.Tracker.IsPremium())
	assert.Equal(t, "2026-03-14", store.Snapshot()[entitlement.KeyLastResetDate])
	ok, err := reloaded.Tracker.UsePrompt(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDebugResetDeclined(t *testing.T) {
	store := kvstore.NewMemoryStoreWith(map[string]string{entitlement.KeyPremium: "true"})
	app := newTestApp(t, store)
	cmd, buf := newTestCmd()

	require.NoError(t, runDebugReset(cmd, app, func(string) (bool, error) { return false, nil }))

	assert.True(t, app.Tracker.IsPremium())
	assert.Contains(t, buf.String(), "reset cancelled")
}
