// Command migrate creates the nc-news schema and optionally loads the
// development seed.
//
// Usage:
//
//	migrate [-seed] [-down]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"nc-news/internal/config"
	"nc-news/internal/infra/db"
	"nc-news/internal/observability/logging"
)

func main() {
	seed := flag.Bool("seed", false, "load the development dataset after migrating")
	down := flag.Bool("down", false, "drop all tables instead of migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *seed, *down); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, seed, down bool) error {
	database, err := db.Open(ctx, db.ConnectionConfig{
		DSN:          cfg.DB.URL,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	})
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if down {
		if err := db.MigrateDown(ctx, database); err != nil {
			return err
		}
		slog.Info("schema dropped")
		return nil
	}

	if err := db.MigrateUp(ctx, database); err != nil {
		return err
	}
	slog.Info("schema migrated")

	if seed {
		if err := db.Seed(ctx, database); err != nil {
			return err
		}
		slog.Info("development seed loaded")
	}
	return nil
}
