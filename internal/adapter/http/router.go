package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/handler"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/middleware"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/auth"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	CustomerHandler    *handler.CustomerHandler
	TransactionHandler *handler.TransactionHandler
	CashbookHandler    *handler.CashbookHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	MessageHandler     *handler.MessageHandler
	PortalHandler      *handler.PortalHandler
	AdminHandler       *handler.AdminHandler
	ActivityHandler    *handler.ActivityHandler
	HealthHandler      *handler.HealthHandler

	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	AllowedOrigins   []string
	Logger           *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	if cfg.Logger != nil {
		r.Use(cfg.Logger.Wrap)
	}
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyKeyHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	requireAuth := middleware.AuthMiddleware(cfg.JWTManager)
	ownerOnly := middleware.RequireRole(domain.RoleOwner)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	accountOnly := middleware.RequireRole(domain.RoleOwner, domain.RoleAdmin)
	customerOnly := middleware.RequireRole(domain.RoleCustomer)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/portal/login", cfg.AuthHandler.PortalLogin)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth, accountOnly)
				r.Get("/me", cfg.AuthHandler.Me)
				r.Put("/profile", cfg.AuthHandler.UpdateProfile)
			})
		})

		// Owner bookkeeping
		r.Group(func(r chi.Router) {
			r.Use(requireAuth, ownerOnly)

			r.Route("/customers", func(r chi.Router) {
				r.Post("/", cfg.CustomerHandler.Create)
				r.Get("/", cfg.CustomerHandler.List)
				r.Get("/{id}", cfg.CustomerHandler.Get)
				r.Put("/{id}", cfg.CustomerHandler.Update)
				r.Delete("/{id}", cfg.CustomerHandler.Delete)
				r.Get("/{id}/statement", cfg.CustomerHandler.Statement)
				r.Post("/{id}/portal-code", cfg.CustomerHandler.SetPortalCode)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", cfg.TransactionHandler.Create)
				r.Put("/{id}", cfg.TransactionHandler.Update)
				r.Delete("/{id}", cfg.TransactionHandler.Delete)
			})

			r.Route("/cashbook", func(r chi.Router) {
				r.Post("/", cfg.CashbookHandler.Create)
				r.Get("/", cfg.CashbookHandler.List)
				r.Get("/summary", cfg.CashbookHandler.Summary)
				r.Put("/{id}", cfg.CashbookHandler.Update)
				r.Delete("/{id}", cfg.CashbookHandler.Delete)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/dashboard", cfg.AnalyticsHandler.Dashboard)
				r.Get("/top", cfg.AnalyticsHandler.Top)
			})

			r.Get("/activity", cfg.ActivityHandler.List)
		})

		// Messaging for owners and admins
		r.Group(func(r chi.Router) {
			r.Use(requireAuth, accountOnly)

			r.Route("/messages", func(r chi.Router) {
				r.Post("/", cfg.MessageHandler.Send)
				r.Get("/", cfg.MessageHandler.Thread)
				r.Post("/{id}/read", cfg.MessageHandler.MarkRead)
			})
		})

		// Customer self-service portal
		r.Group(func(r chi.Router) {
			r.Use(requireAuth, customerOnly)

			r.Route("/portal", func(r chi.Router) {
				r.Get("/statement", cfg.PortalHandler.Statement)
				r.Get("/messages", cfg.PortalHandler.Messages)
				r.Post("/messages", cfg.PortalHandler.SendMessage)
			})
		})

		// Admin
		r.Group(func(r chi.Router) {
			r.Use(requireAuth, adminOnly)
			r.Get("/admin/owners", cfg.AdminHandler.ListOwners)
		})
	})

	return r
}
