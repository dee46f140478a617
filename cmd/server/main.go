package main

import (
	"bar-finder/internal/adapters/repositories"
	"bar-finder/internal/api"
	"bar-finder/internal/config"
	"bar-finder/internal/geo"
	"bar-finder/internal/platform/db"
	"bar-finder/internal/platform/obs"
	"bar-finder/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// main is the application composition root.
// It loads the venue collection once from the configured source and serves read-only queries over it.
func main() {
	loaded, envErr := config.LoadEnv()
	cfg := config.FromEnv()

	logger, err := obs.NewLogger("bar-finder", cfg.LogLevel, cfg.LogFormat)
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

	if err := serve(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func serve(cfg config.Config, logger *zap.Logger) error {
	dist, err := geo.ByName(cfg.DistanceFormula)
	if err != nil {
		return err
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, closeRepo, err := openRepository(startupCtx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	venues, err := repo.ListVenues(startupCtx)
	if err != nil {
		return fmt.Errorf("load venues: %w", err)
	}
	if len(venues) == 0 {
		logger.Warn("venue collection is empty; queries will return no_venues")
	}
	logger.Info("venues loaded",
		zap.String("source", cfg.VenuesSource),
		zap.Int("count", len(venues)),
		zap.String("distance_formula", cfg.DistanceFormula),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(venues, dist, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		srvErr <- srv.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// openRepository selects the venue source. The returned close func is always safe to call.
func openRepository(ctx context.Context, cfg config.Config) (ports.VenueRepository, func(), error) {
	switch cfg.VenuesSource {
	case "file":
		return repositories.NewJSONVenueRepository(cfg.VenuesPath), func() {}, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, errors.New("DATABASE_URL is required when VENUES_SOURCE=postgres")
		}
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresVenueRepository(conn), func() { _ = conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown VENUES_SOURCE %q (want file or postgres)", cfg.VenuesSource)
	}
}
