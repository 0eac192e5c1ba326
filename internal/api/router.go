// Package api assembles the HTTP surface: middleware stack, post routes,
// health and metrics endpoints.
package api

import (
	"net/http"

	"Posts/internal/api/middleware"
	"Posts/internal/api/routes"
	"Posts/internal/core/posts"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries what NewRouter needs beyond the post service
type RouterConfig struct {
	// Metrics may be nil, in which case /metrics is not mounted
	Metrics *middleware.Metrics

	AllowedOrigins []string
	MaxBodyBytes   int64

	// AccessLog enables chi's request logger
	AccessLog bool
}

// NewRouter builds the chi router serving the posts API
func NewRouter(service posts.Service, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	if cfg.AccessLog {
		r.Use(chiMiddleware.Logger)
	}
	r.Use(chiMiddleware.Recoverer)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.MethodOverrideHeader},
		MaxAge:         300,
	}))

	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(middleware.MethodOverride)

	routes.RegisterPostRoutes(r, service, cfg.MaxBodyBytes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	return r
}
