package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kindredhq/ledgerd/internal/adapter/http/handler"
	"github.com/kindredhq/ledgerd/internal/adapter/http/middleware"
	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/infrastructure/auth"
	"github.com/kindredhq/ledgerd/internal/infrastructure/metrics"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	EventHandler       *handler.EventHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	Metrics            *metrics.Metrics
	JWTManager         *auth.JWTManager // nil disables authentication
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager, cfg.Metrics))
		} else {
			// Auth disabled: every request acts as an admin.
			r.Use(middleware.StaticPrincipal(domain.Principal{
				ID:   "local",
				Role: domain.RoleAdmin,
			}))
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/debit", cfg.TransactionHandler.Debit)
			r.Post("/credit", cfg.TransactionHandler.Credit)
			r.Post("/transfer", cfg.TransactionHandler.Transfer)
		})

		// Event feed
		r.Get("/events", cfg.EventHandler.List)
	})

	return r
}
