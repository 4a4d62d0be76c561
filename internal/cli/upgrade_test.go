package cli

import (
	"errors"
	"testing"

	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/masadraza1122/pixalpromt/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeConfirmed(t *testing.T) {
	store := kvstore.NewMemoryStore()
	app := newTestApp(t, store)
	cmd, buf := newTestCmd()

	require.NoError(t, runUpgrade(cmd, app, AlwaysYes()))

	assert.True(t, app.Tracker.IsPremium())
	assert.Equal(t, "true", store.Snapshot()[entitlement.KeyPremium])
	assert.Contains(t, buf.String(), "Welcome to Premium!")
}

func TestUpgradeDeclined(t *testing.T) {
	app := newTestApp(t, nil)
	cmd, buf := newTestCmd()

	decline := func(string) (bool, error) { return false, nil }
	require.NoError(t, runUpgrade(cmd, app, decline))

	assert.False(t, app.Tracker.IsPremium())
	assert.Contains(t, buf.String(), "upgrade cancelled")
}

func TestUpgradeAlreadyPremium(t *testing.T) {
	store := kvstore.NewMemoryStoreWith(map[string]string{entitlement.KeyPremium: "true"})
	app := newTestApp(t, store)
	cmd, buf := newTestCmd()

	asked := false
	confirm := func(string) (bool, error) { asked = true; return true, nil }
	require.NoError(t, runUpgrade(cmd, app, confirm))

	assert.False(t, asked)
	assert.Contains(t, buf.String(), "already on Premium")
}

func TestUpgradePersistFailure(t *testing.T) {
	store := kvstore.NewMemoryStore()
	app := newTestApp(t, store)
	store.SetErr = errors.New("disk full")
	cmd, _ := newTestCmd()

	err := runUpgrade(cmd, app, AlwaysYes())

	require.Error(t, err)
	assert.ErrorIs(t, err, entitlement.ErrPersist)
	assert.False(t, app.Tracker.IsPremium())
}

func TestUpgradeConfirmError(t *testing.T) {
	app := newTestApp(t, nil)
	cmd, _ := newTestCmd()

	boom := errors.New("no tty")
	err := runUpgrade(cmd, app, func(string) (bool, error) { return false, boom })

	assert.ErrorIs(t, err, boom)
}
