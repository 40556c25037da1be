package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"creekwatch/internal/config"
	custommw "creekwatch/internal/middleware"
)

// Server wraps the HTTP server for the data API
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewRouter builds the chi router with middleware and all routes.
func NewRouter(cfg *config.Config, dataDir string, logger *slog.Logger) chi.Router {
	metrics := NewMetrics()
	dataHandler := NewDataHandler(dataDir, logger)
	healthHandler := NewHealthHandler()

	r := chi.NewRouter()
	r.Use(custommw.RequestID)
	r.Use(custommw.StructuredLogger(logger))
	r.Use(custommw.Recoverer(logger))
	r.Use(metrics.Instrument)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		if cfg.Server.RateLimit.Enabled {
			r.Use(custommw.RateLimit(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))
		}
		r.Mount("/", dataHandler.Routes())
	})

	r.Get("/healthz", healthHandler.Handle)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

// NewServer creates the data API server.
func NewServer(cfg *config.Config, dataDir string, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      NewRouter(cfg, dataDir, logger),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		logger: logger,
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("data API listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
