// Package api serves the chart tools over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/deepfield-ai/pitchviz/slogger"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8090".
	Addr string

	// Root is the directory /api/viz serves files from and new charts are
	// written to. Defaults to the current working directory.
	Root string

	// CORSAllowOrigins lists allowed CORS origins. Empty allows all.
	CORSAllowOrigins []string

	Logger slogger.Logger
}

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(cfg Config) *chi.Mux {
	if cfg.Logger == nil {
		cfg.Logger = slogger.DefaultLogger
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	origins := cfg.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := corslib.New(corslib.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Handler dependencies ---
	h := newHandler(cfg)

	// --- Routes ---
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
		r.Get("/viz", h.GetViz)
		r.Post("/viz/pizza", h.PostPizzaChart)
		r.Post("/viz/radar", h.PostRadarChart)
	})

	return r
}

// ListenAndServe starts the HTTP server on cfg.Addr.
func ListenAndServe(cfg Config) error {
	if cfg.Logger != nil {
		cfg.Logger.Info("starting api server", "addr", cfg.Addr, "root", cfg.Root)
	}
	return http.ListenAndServe(cfg.Addr, NewRouter(cfg))
}
