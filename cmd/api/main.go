// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

// Command api is the entry point for the Melabook HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Load geography and taxonomy reference data.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/melabook/melabook/internal/api"
	"github.com/melabook/melabook/internal/catalog"
	"github.com/melabook/melabook/internal/core/geography"
	"github.com/melabook/melabook/internal/core/taxonomy"
	"github.com/melabook/melabook/internal/exhibition"
	"github.com/melabook/melabook/internal/platform/config"
	"github.com/melabook/melabook/internal/platform/constants"
	"github.com/melabook/melabook/internal/platform/docstore"
	"github.com/melabook/melabook/internal/platform/migration"
	pgstore "github.com/melabook/melabook/internal/platform/postgres"
	redisstore "github.com/melabook/melabook/internal/platform/redis"
	"github.com/melabook/melabook/internal/registration"
	"github.com/melabook/melabook/internal/sales"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "melabook"))
	slog.SetDefault(log)

	log.Info("[Melabook] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "melabook"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Reference Data ─────────────────────────────────────────────────
	geo, err := geography.Load(cfg.GeographyPath)
	must(log, err, "load geography reference data")

	global, err := taxonomy.Load(cfg.TaxonomyPath)
	must(log, err, "load taxonomy reference data")

	log.Info("reference_data_loaded",
		slog.Int("states", len(geo.States())),
		slog.Int("categories", len(global.Categories())),
	)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	store := docstore.NewPostgres(pool)

	registrationService := registration.NewService(registration.NewDocstoreRepository(store), geo, global, log)
	salesService := sales.NewService(sales.NewDocstoreRepository(store), registrationService, log)
	exhibitionService := exhibition.NewService(exhibition.NewDocstoreRepository(store), log)
	catalogService := catalog.NewService(catalog.NewDocstoreRepository(store), rdb, global, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Geography:    geography.NewHandler(geo),
		Taxonomy:     taxonomy.NewHandler(global),
		Registration: registration.NewHandler(registrationService),
		Sales:        sales.NewHandler(salesService),
		Exhibition:   exhibition.NewHandler(exhibitionService),
		Catalog:      catalog.NewHandler(catalogService),
	}

	server := api.NewServer(context.Background(), cfg, log, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
