package main

import (
	"context"
	"log/slog"
	"os"

	"stayfinder/internal/infra/postgres"
	"stayfinder/internal/infra/seed"
	"stayfinder/internal/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := postgres.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	inventory := postgres.NewInventoryRepository(pool, cfg.Storage.Timeout)

	if err := seed.Run(context.Background(), inventory); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding complete")
}
