package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/cashledger/internal/adapter/http/handler"
	"github.com/iho/cashledger/internal/adapter/http/middleware"
	"github.com/iho/cashledger/internal/domain"
	"github.com/iho/cashledger/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	HealthHandler     *handler.HealthHandler
	JobHandler        *handler.JobHandler
	SystemHandler     *handler.SystemHandler
	AssetHandler      *handler.AssetHandler
	AssetAdminHandler *handler.AssetAdminHandler
	Logger            zerolog.Logger
	Metrics           *metrics.Metrics
	Gatherer          prometheus.Gatherer // optional, defaults to the default gatherer
	RateLimiter       *middleware.RateLimiter
}

var (
	customerRoles = []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleInternal}
	operatorRoles = []domain.Role{domain.RoleAdmin, domain.RoleInternal}
)

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Actor)
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		r.Get("/business-day", cfg.SystemHandler.BusinessDay)

		// Withdrawals
		r.Route("/withdrawals", func(r chi.Router) {
			r.Use(middleware.RequireRole(customerRoles...))
			r.Post("/", cfg.AssetHandler.Withdraw)
			r.Post("/{id}/cancel", cfg.AssetHandler.Cancel)
			r.With(middleware.RequireRole(operatorRoles...)).Get("/", cfg.AssetAdminHandler.Withdrawals)
		})

		// Accounts
		r.Route("/accounts/{id}", func(r chi.Router) {
			r.Use(middleware.RequireRole(customerRoles...))
			r.Use(middleware.RequireAccountOwner("id"))
			r.Get("/withdrawals", cfg.AssetHandler.PendingWithdrawals)
			r.Get("/available", cfg.AssetHandler.Available)
		})

		// Operations
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(operatorRoles...))

			r.Get("/audit-records", cfg.SystemHandler.AuditRecords)

			r.Get("/settings/{id}", cfg.SystemHandler.Setting)
			r.Put("/settings/{id}", cfg.SystemHandler.ChangeSetting)
			r.Post("/holidays", cfg.SystemHandler.RegisterHolidays)
			r.Post("/fi-accounts", cfg.SystemHandler.RegisterFiAccount)
			r.Post("/self-fi-accounts", cfg.SystemHandler.RegisterSelfFiAccount)

			r.Route("/jobs", func(r chi.Router) {
				r.Post("/close-withdrawals", cfg.JobHandler.CloseWithdrawals)
				r.Post("/realize-cashflows", cfg.JobHandler.RealizeCashflows)
				r.Post("/advance-business-day", cfg.JobHandler.AdvanceBusinessDay)
			})
		})
	})

	return r
}
