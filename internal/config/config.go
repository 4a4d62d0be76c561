// Package config loads application settings from an optional YAML file,
// an optional .env file and PIXALPROMPT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "PIXALPROMPT"

// Config holds every tunable setting.
type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Quota    QuotaConfig    `mapstructure:"quota"`
	Generate GenerateConfig `mapstructure:"generate"`
	Reward   RewardConfig   `mapstructure:"reward"`
	Log      LogConfig      `mapstructure:"log"`
}

type StorageConfig struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type QuotaConfig struct {
	DailyLimit int `mapstructure:"daily_limit"`
}

type GenerateConfig struct {
	Delay          time.Duration `mapstructure:"delay"`
	RevealInterval time.Duration `mapstructure:"reveal_interval"`
}

type RewardConfig struct {
	AdDuration time.Duration `mapstructure:"ad_duration"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DataDir returns the default data directory under homeDir.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".pixalprompt")
}

// Options tells Load where to look.
type Options struct {
	// HomeDir anchors the default data directory.
	HomeDir string
	// DataDir overrides data_dir from every other source. The default
	// config file is looked up under it.
	DataDir string
	// ConfigFile overrides <data_dir>/config.yaml.
	ConfigFile string
	// EnvFile is loaded into the environment first when it exists. Empty
	// means ".env" in the working directory.
	EnvFile string
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault("data_dir", DataDir(homeDir))
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "pixalprompt:")
	v.SetDefault("quota.daily_limit", entitlement.DefaultDailyLimit)
	v.SetDefault("generate.delay", "1.5s")
	v.SetDefault("generate.reveal_interval", "80ms")
	v.SetDefault("reward.ad_duration", "2s")
	v.SetDefault("log.level", "warn")
}

// Load builds the configuration. A missing config or .env file is not an
// error; a malformed one is.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, opts.HomeDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if opts.DataDir != "" {
		v.Set("data_dir", opts.DataDir)
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = filepath.Join(v.GetString("data_dir"), "config.yaml")
	}
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	if cfg.Quota.DailyLimit < 1 {
		cfg.Quota.DailyLimit = entitlement.DefaultDailyLimit
	}
	return &cfg, nil
}
