package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/handlers"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	APIPrefix         string // e.g. "/api"
	AuthHandler       *handlers.AuthHandler
	UsersHandler      *handlers.UsersHandler
	WorkspacesHandler *handlers.WorkspacesHandler
	HealthHandler     *handlers.HealthHandler
	ProcessID         func(http.Handler) http.Handler
	RequireBearer     func(http.Handler) http.Handler
	Secure            func(http.Handler) http.Handler
	Metrics           bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RealIP)
	if cfg.ProcessID != nil {
		r.Use(cfg.ProcessID)
	}
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	r.Use(chimid.AllowContentType("application/json"))

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/"
	}
	r.Route(prefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Routes that carry their credential in the body.
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.Refresh)
			r.Post("/forgot-password", cfg.AuthHandler.ForgotPassword)
			r.Post("/reset-password", cfg.AuthHandler.ResetPassword)
			r.Post("/verify-user", cfg.AuthHandler.VerifyUser)
			// Routes that require a logged-in user.
			if cfg.RequireBearer != nil {
				r.Group(func(r chi.Router) {
					r.Use(cfg.RequireBearer)
					r.Post("/logout", cfg.AuthHandler.Logout)
				})
			}
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", cfg.UsersHandler.Register)
			if cfg.RequireBearer != nil {
				r.Group(func(r chi.Router) {
					r.Use(cfg.RequireBearer)
					r.Get("/", cfg.UsersHandler.GetAll)
					r.Get("/{userID}", cfg.UsersHandler.GetByID)
					r.Patch("/{userID}", cfg.UsersHandler.Patch)
					r.Delete("/{userID}", cfg.UsersHandler.Delete)
				})
			}
		})

		if cfg.WorkspacesHandler != nil && cfg.RequireBearer != nil {
			r.Route("/workspaces", func(r chi.Router) {
				r.Use(cfg.RequireBearer)
				r.Post("/", cfg.WorkspacesHandler.Create)
				r.Get("/", cfg.WorkspacesHandler.GetAll)
				r.Get("/{workspaceID}", cfg.WorkspacesHandler.GetByID)
				r.Patch("/{workspaceID}", cfg.WorkspacesHandler.Patch)
				r.Delete("/{workspaceID}", cfg.WorkspacesHandler.Delete)
			})
		}
	})

	return r
}
