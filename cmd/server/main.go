package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/historymap/internal/cache"
	"github.com/pscheid92/historymap/internal/config"
	"github.com/pscheid92/historymap/internal/database"
	"github.com/pscheid92/historymap/internal/geo"
	"github.com/pscheid92/historymap/internal/logging"
	"github.com/pscheid92/historymap/internal/scraper"
	"github.com/pscheid92/historymap/internal/sentiment"
	"github.com/pscheid92/historymap/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return db
}

func setupAtlas(cfg *config.Config) *geo.Atlas {
	atlas, err := geo.Load(cfg.GeoJSONPath)
	if err != nil {
		slog.Error("Failed to load region geometry", "path", cfg.GeoJSONPath, "error", err)
		os.Exit(1)
	}
	return atlas
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	atlas := setupAtlas(cfg)
	slog.Info("Region geometry loaded", "regions", len(atlas.Regions()))

	client := scraper.NewClient(cfg.ScraperBaseURL, cfg.ScraperTimeout)
	mock := scraper.NewMockGenerator(cfg.ScraperBaseURL, time.Now().UnixNano())
	diaries := scraper.NewSource(client, mock)
	stats := scraper.NewPopulationSource(time.Now().UnixNano())

	store := database.NewRegionRepo(pool)
	scorer := sentiment.NewScorer()
	resolver := cache.New(store, diaries, stats, scorer, clock, cfg.CacheTTL)

	srv := server.NewServer(cfg, atlas, resolver)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
