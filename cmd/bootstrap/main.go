package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/chaithanya-077/ridewave-r/internal/config"
	"github.com/chaithanya-077/ridewave-r/internal/observability"
	"github.com/chaithanya-077/ridewave-r/internal/persistence"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
	"github.com/chaithanya-077/ridewave-r/internal/seed"
)

// One-shot store initialization: migrations, the fixed bike catalog and the
// administrator account. Safe to re-run; the catalog is reseeded and the
// admin creation is skipped when one already exists.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	pool := pg.PoolHandle()
	if err := seed.SeedBikes(ctx, repository.NewBikeRepository(pool), logger); err != nil {
		logger.Fatal("failed to seed bikes", zap.Error(err))
	}
	if err := seed.EnsureAdmin(ctx, repository.NewUserRepository(pool), cfg.Bootstrap, cfg.Auth.BcryptCost, logger); err != nil {
		logger.Fatal("failed to ensure admin", zap.Error(err))
	}

	logger.Info("bootstrap complete")
}
