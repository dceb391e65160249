// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/melabook/melabook/internal/catalog"
	"github.com/melabook/melabook/internal/core/geography"
	"github.com/melabook/melabook/internal/core/taxonomy"
	"github.com/melabook/melabook/internal/exhibition"
	"github.com/melabook/melabook/internal/platform/config"
	"github.com/melabook/melabook/internal/platform/constants"
	"github.com/melabook/melabook/internal/platform/middleware"
	"github.com/melabook/melabook/internal/registration"
	"github.com/melabook/melabook/internal/sales"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Geography serves the administrative-division cascade lookups.
	Geography *geography.Handler

	// Taxonomy serves the global product classification lookups.
	Taxonomy *taxonomy.Handler

	// Registration handles stall registration entry and edits.
	Registration *registration.Handler

	// Sales handles the daily sales ledger.
	Sales *sales.Handler

	// Exhibition manages exhibitions and kiosk settings.
	Exhibition *exhibition.Handler

	// Catalog serves the public product browse.
	Catalog *catalog.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/geography", h.Geography.RegisterRoutes)
		api.Route("/taxonomy", h.Taxonomy.RegisterRoutes)
		api.Route("/registrations", h.Registration.RegisterRoutes)
		api.Route("/sales", h.Sales.RegisterRoutes)
		api.Route("/exhibitions", h.Exhibition.RegisterRoutes)
		api.Route("/catalog", h.Catalog.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
