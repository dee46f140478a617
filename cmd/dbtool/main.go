package main

import (
	"bar-finder/internal/adapters/repositories"
	"bar-finder/internal/config"
	"bar-finder/internal/platform/db"
	"bar-finder/internal/platform/obs"
	"context"
	"log"
	"time"

	"go.uber.org/zap"
)

// dbtool creates the venues schema and replaces its contents from a JSON file.
func main() {
	loaded, envErr := config.LoadEnv()

	logger, err := obs.NewLogger("bar-finder-dbtool", config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "console"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if envErr != nil {
		logger.Warn("failed to load .env", zap.Error(envErr))
	} else if !loaded {
		logger.Info("no .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	seedPath := config.Get("VENUES_PATH", "data/bars.json")

	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}

	logger.Info("seeding venues", zap.String("path", seedPath))
	n, err := repositories.SeedFromJSON(ctx, conn, seedPath)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("venues", n))
}
