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

	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/analysis"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/broadcast"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/config"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/database"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/jobs"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/logging"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/report"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/server"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/stats"
	"github.com/SivaChandraGanesh/Twitter-sentiment-analysis/internal/stream"
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

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrationsWithLock(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func runGracefulShutdown(srv *server.Server, controller *stream.Controller, manager *jobs.Manager, hub *broadcast.Hub) <-chan struct{} {
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

		controller.Stop()
		manager.Stop()
		hub.Stop()

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

	records := database.NewRecordRepo(pool)
	analyzer := analysis.NewAnalyzer()
	sessionStats := stats.New()

	hub := broadcast.NewHub(clock, cfg.MaxWebSocketConnections)
	controller := stream.NewController(analyzer, records, hub, sessionStats, clock)
	manager := jobs.NewManager(analyzer, records, clock, jobs.Options{
		Workers:   cfg.JobWorkers,
		QueueSize: cfg.JobQueueSize,
		ChunkSize: cfg.IngestChunkSize,
		Retention: cfg.JobRetention,
	})
	reports := report.NewService(records)

	srv, err := server.NewServer(cfg, analyzer, controller, manager, reports, hub, pool)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv, controller, manager, hub)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
