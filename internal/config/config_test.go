package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadIn(t *testing.T, home string) *Config {
	t.Helper()
	cfg, err := Load(Options{HomeDir: home, EnvFile: filepath.Join(home, "missing.env")})
	require.NoError(t, err)
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	cfg := loadIn(t, home)

	assert.Equal(t, filepath.Join(home, ".pixalprompt"), cfg.DataDir)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "pixalprompt:", cfg.Storage.Redis.Prefix)
	assert.Equal(t, entitlement.DefaultDailyLimit, cfg.Quota.DailyLimit)
	assert.Equal(t, 1500*time.Millisecond, cfg.Generate.Delay)
	assert.Equal(t, 80*time.Millisecond, cfg.Generate.RevealInterval)
	assert.Equal(t, 2*time.Second, cfg.Reward.AdDuration)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := DataDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))
	yaml := `
storage:
  backend: SQLite
quota:
  daily_limit: 5
generate:
  delay: 0s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg := loadIn(t, home)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Quota.DailyLimit)
	assert.Equal(t, time.Duration(0), cfg.Generate.Delay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 80*time.Millisecond, cfg.Generate.RevealInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PIXALPROMPT_STORAGE_BACKEND", "redis")
	t.Setenv("PIXALPROMPT_STORAGE_REDIS_ADDR", "cache:6380")
	t.Setenv("PIXALPROMPT_QUOTA_DAILY_LIMIT", "0")

	cfg := loadIn(t, home)

	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, 3, cfg.Quota.DailyLimit)
}

func TestLoadEnvFile(t *testing.T) {
	home := t.TempDir()
	envFile := filepath.Join(home, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PIXALPROMPT_LOG_LEVEL=info\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("PIXALPROMPT_LOG_LEVEL") })

	cfg, err := Load(Options{HomeDir: home, EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMalformedConfig(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0644))

	_, err := Load(Options{HomeDir: home, ConfigFile: path, EnvFile: filepath.Join(home, "none")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadDataDirOverrideLocatesConfigFile(t *testing.T) {
	home := t.TempDir()
	dataDir := t.TempDir()
	require.NoError(t, os.MkdirAll(DataDir(home), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(DataDir(home), "config.yaml"), []byte("quota:\n  daily_limit: 9\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte("quota:\n  daily_limit: 7\ndata_dir: /elsewhere\n"), 0644))

	cfg, err := Load(Options{HomeDir: home, DataDir: dataDir, EnvFile: filepath.Join(home, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, 7, cfg.Quota.DailyLimit)
}

func TestLoadNonPositiveDailyLimitFallsBack(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(DataDir(home), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(DataDir(home), "config.yaml"), []byte("quota:\n  daily_limit: 0\n"), 0644))

	cfg := loadIn(t, home)

	assert.Equal(t, entitlement.DefaultDailyLimit, cfg.Quota.DailyLimit)
}
