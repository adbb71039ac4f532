package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/canaryfilms/portal/auth"
	cacheRistretto "github.com/canaryfilms/portal/cache/ristretto"
	"github.com/canaryfilms/portal/config"
	"github.com/canaryfilms/portal/core"
	"github.com/canaryfilms/portal/db"
	"github.com/canaryfilms/portal/db/postgres"
	"github.com/canaryfilms/portal/db/zombiezen"
	routerHttprouter "github.com/canaryfilms/portal/router/httprouter"
	"github.com/canaryfilms/portal/server"
)

func main() {
	configPath := flag.String("config", "", "path to TOML configuration file (optional)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	adapter, err := openAdapter(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer adapter.Close()

	if err := adapter.BootstrapSchema(ctx); err != nil {
		logger.Error("failed to bootstrap schema", "err", err)
		os.Exit(1)
	}

	users := db.NewUserStore(adapter)
	portal := db.NewPortalStore(adapter)

	if err := auth.EnsureAdmin(ctx, users, cfg.Admin, logger, os.Stdout); err != nil {
		logger.Error("failed to bootstrap admin account", "err", err)
		os.Exit(1)
	}

	states, err := cacheRistretto.New[string]()
	if err != nil {
		logger.Error("failed to create state cache", "err", err)
		os.Exit(1)
	}

	rt := routerHttprouter.New()

	app, err := core.NewApp(
		core.WithDbUsers(users),
		core.WithDbPortal(portal),
		core.WithPipeline(auth.NewPipeline(users, logger, auth.WithHackclubProfileURL(cfg.Hackclub.UserInfoURL))),
		core.WithSessionCodec(auth.NewSessionCodec(users)),
		core.WithOauth2StateCache(states),
		core.WithConfigProvider(config.NewProvider(cfg)),
		core.WithLogger(logger),
		core.WithParamReader(rt),
	)
	if err != nil {
		logger.Error("failed to assemble application", "err", err)
		os.Exit(1)
	}

	route(app, rt)

	server.NewServer(cfg.Server, rt, logger).Run()
}

// openAdapter selects the engine exactly once: a configured URL means
// postgres, otherwise the sqlite file at the configured path.
func openAdapter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (db.Adapter, error) {
	if cfg.Database.URL != "" {
		logger.Info("using postgres engine")
		return postgres.New(ctx, cfg.Database.URL)
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	logger.Info("using sqlite engine", "path", cfg.Database.Path)
	return zombiezen.New(cfg.Database.Path)
}
