package cli

import (
	"context"
	"os"
	"time"

	"github.com/masadraza1122/pixalpromt/internal/catalog"
	"github.com/masadraza1122/pixalpromt/internal/config"
	"github.com/masadraza1122/pixalpromt/internal/entitlement"
	"github.com/masadraza1122/pixalpromt/internal/favorite"
	"github.com/masadraza1122/pixalpromt/internal/generate"
	"github.com/masadraza1122/pixalpromt/internal/kvstore"
	"github.com/masadraza1122/pixalpromt/internal/logging"
	"github.com/masadraza1122/pixalpromt/internal/reward"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App bundles the long-lived collaborators a command works with. It is built
// once per process and passed to the run functions explicitly.
type App struct {
	Config    *config.Config
	Log       zerolog.Logger
	Store     kvstore.Store
	Catalog   *catalog.Catalog
	Tracker   *entitlement.Tracker
	Favorites *favorite.Set
	Generator *generate.Generator
	Ad        reward.Ad
	Now       func() time.Time
}

// NewApp loads entitlement and favorite state from store.
func NewApp(ctx context.Context, cfg *config.Config, log zerolog.Logger, store kvstore.Store, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	return &App{
		Config:  cfg,
		Log:     log,
		Store:   store,
		Catalog: catalog.Default(),
		Tracker: entitlement.Load(ctx, store,
			entitlement.WithClock(now),
			entitlement.WithDailyLimit(cfg.Quota.DailyLimit),
			entitlement.WithLogger(log.With().Str("component", "entitlement").Logger()),
		),
		Favorites: favorite.Load(ctx, store, log.With().Str("component", "favorite").Logger()),
		Generator: generate.NewGenerator(generate.WithDelay(cfg.Generate.Delay)),
		Ad:        reward.NewSimulated(cfg.Reward.AdDuration),
		Now:       now,
	}
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// NewSession starts a generation session for card.
func (a *App) NewSession(card catalog.Card) *generate.Session {
	return generate.NewSession(card, a.Tracker, a.Generator, a.Ad, a.Log.With().Str("component", "generate").Logger())
}

// openApp reads configuration for cmd and builds the App.
func openApp(cmd *cobra.Command) (*App, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configFile, _ := cmd.Flags().GetString("config")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	cfg, err := config.Load(config.Options{HomeDir: homeDir, DataDir: dataDir, ConfigFile: configFile})
	if err != nil {
		return nil, err
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := kvstore.Open(ctx, kvstore.Options{
		Backend:       cfg.Storage.Backend,
		DataDir:       cfg.DataDir,
		RedisAddr:     cfg.Storage.Redis.Addr,
		RedisPassword: cfg.Storage.Redis.Password,
		RedisDB:       cfg.Storage.Redis.DB,
		RedisPrefix:   cfg.Storage.Redis.Prefix,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("backend", cfg.Storage.Backend).Str("data_dir", cfg.DataDir).Msg("store opened")

	return NewApp(ctx, cfg, log, store, time.Now), nil
}

// withApp opens the App, runs fn and closes the store.
func withApp(cmd *cobra.Command, fn func(app *App) error) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Log.Warn().Err(err).Msg("closing store")
		}
	}()
	return fn(app)
}

// cmdContext returns the command's context, or Background outside Execute.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
