package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/duarte/gocontas/internal/adapter/http/handler"
	"github.com/duarte/gocontas/internal/adapter/http/middleware"
	"github.com/duarte/gocontas/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CashAccountHandler *handler.CashAccountHandler
	CategoryHandler    *handler.CategoryHandler
	PartyHandler       *handler.PartyHandler
	ObligationHandler  *handler.ObligationHandler
	EntryHandler       *handler.EntryHandler
	CashFlowHandler    *handler.CashFlowHandler
	DashboardHandler   *handler.DashboardHandler
	ParameterHandler   *handler.ParameterHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	RateLimiter        *middleware.RateLimiter
	Logging            *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Tenant)

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Cash accounts
		r.Route("/cash-accounts", func(r chi.Router) {
			r.Post("/", cfg.CashAccountHandler.Create)
			r.Get("/", cfg.CashAccountHandler.List)
			r.Get("/{id}", cfg.CashAccountHandler.Get)
			r.Put("/{id}", cfg.CashAccountHandler.Update)
			r.Delete("/{id}", cfg.CashAccountHandler.Delete)
		})

		// Chart of accounts
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", cfg.CategoryHandler.Create)
			r.Get("/", cfg.CategoryHandler.List)
			r.Get("/{id}", cfg.CategoryHandler.Get)
			r.Put("/{id}", cfg.CategoryHandler.Update)
			r.Delete("/{id}", cfg.CategoryHandler.Delete)
		})

		// Registrants
		r.Route("/parties", func(r chi.Router) {
			r.Post("/", cfg.PartyHandler.Create)
			r.Get("/", cfg.PartyHandler.List)
			r.Get("/{id}", cfg.PartyHandler.Get)
			r.Put("/{id}", cfg.PartyHandler.Update)
			r.Delete("/{id}", cfg.PartyHandler.Delete)
		})

		// Obligations and settlement
		r.Route("/obligations", func(r chi.Router) {
			r.Post("/", cfg.ObligationHandler.Create)
			r.Get("/{id}", cfg.ObligationHandler.Get)
			r.Put("/{id}", cfg.ObligationHandler.Update)
			r.Delete("/{id}", cfg.ObligationHandler.Delete)
			r.Post("/{id}/settle", cfg.ObligationHandler.Settle)
		})
		r.Get("/receivables", cfg.ObligationHandler.ListReceivables)
		r.Get("/payables", cfg.ObligationHandler.ListPayables)

		// Ledger entries
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/", cfg.EntryHandler.List)
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
		})

		// Cash flow
		r.Get("/cash-flow", cfg.CashFlowHandler.Statement)
		r.Get("/cash-flow/report", cfg.CashFlowHandler.Report)

		// Dashboard
		r.Get("/dashboard", cfg.DashboardHandler.Get)

		// Tenant parameters
		r.Route("/parameters", func(r chi.Router) {
			r.Get("/{key}", cfg.ParameterHandler.Get)
			r.Put("/{key}", cfg.ParameterHandler.Set)
		})
	})

	return r
}
