package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masadraza1122/pixalpromt/internal/config"
	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/masadraza1122/pixalpromt/internal/favorite"
	"github.com/masadraza1122/pixalpromt/internal/generate"
	"github.com/masadraza1122/pixalpromt/internal/kvstore"
	"github.com/masadraza1122/pixalpromt/internal/reward"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func testConfig(dataDir string) *config.Config {
	return &config.Config{
		DataDir: dataDir,
		Storage: config.StorageConfig{Backend: kvstore.BackendMemory},
		Quota:   config.QuotaConfig{DailyLimit: entitlement.DefaultDailyLimit},
		Log:     config.LogConfig{Level: "warn"},
	}
}

// newTestApp builds an App over a memory store with a fixed clock, no
// generation delay and an ad that completes instantly.
func newTestApp(t *testing.T, store *kvstore.MemoryStore) *App {
	t.Helper()
	if store == nil {
		store = kvstore.NewMemoryStore()
	}
	app := NewApp(context.Background(), testConfig(t.TempDir()), zerolog.Nop(), store, func() time.Time { return testNow })
	app.Generator = generate.NewGenerator(generate.WithDelay(0), generate.WithPicker(func(int) int { return 0 }))
	app.Ad = reward.Func(func(context.Context) error { return nil })
	return app
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetContext(context.Background())
	return cmd, buf
}

func TestNewAppLoadsState(t *testing.T) {
	store := kvstore.NewMemoryStoreWith(map[string]string{
		entitlement.KeyPremium:       "false",
		entitlement.KeyPromptsUsed:   "2",
		entitlement.KeyLastResetDate: "2026-03-14",
		favorite.Key:                 `["new1","trend3"]`,
	})

	app := newTestApp(t, store)

	assert.False(t, app.Tracker.IsPremium())
	assert.Equal(t, 2, app.Tracker.PromptsUsedToday())
	assert.True(t, app.Favorites.Has("new1"))
	assert.True(t, app.Favorites.Has("trend3"))
	assert.Len(t, app.Catalog.All(), 24)
}

func TestNewAppDailyLimitFromConfig(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Quota.DailyLimit = 5

	app := NewApp(context.Background(), cfg, zerolog.Nop(), kvstore.NewMemoryStore(), func() time.Time { return testNow })

	assert.Equal(t, 5, app.Tracker.DailyLimit())
}

func TestNewAppSessionUsesTracker(t *testing.T) {
	app := newTestApp(t, nil)
	card, err := app.Catalog.Find("new1")
	require.NoError(t, err)

	s := app.NewSession(card)
	_, err = s.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, app.Tracker.PromptsUsedToday())
}

func TestOpenAppFileBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PIXALPROMPT_STORAGE_BACKEND", "file")
	dataDir := t.TempDir()

	cmd, _ := newTestCmd()
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("data-dir", "", "")
	require.NoError(t, cmd.Flags().Set("data-dir", dataDir))

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte("quota:\n  daily_limit: 5\n"), 0644))

	err := withApp(cmd, func(app *App) error {
		assert.Equal(t, dataDir, app.Config.DataDir)
		assert.Equal(t, 5, app.Tracker.DailyLimit())
		return app.Tracker.UpgradeToPremium(context.Background())
	})
	require.NoError(t, err)

	err = withApp(cmd, func(app *App) error {
		assert.True(t, app.Tracker.IsPremium())
		return nil
	})
	require.NoError(t, err)
}
