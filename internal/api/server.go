// Package api is the HTTP surface over the HALO engine. It owns request
// validation, the TRF-1 response envelope, and the supporting endpoints
// (support FAQ, marketing copy, live stream, metrics). The engine itself
// trusts this layer to reject malformed input first.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/titanx/halo-core/internal/config"
	"github.com/titanx/halo-core/internal/halo"
	"github.com/titanx/halo-core/internal/metrics"
	"github.com/titanx/halo-core/internal/stream"
)

type Server struct {
	cfg         *config.Config
	log         *slog.Logger
	registry    *halo.Registry
	broadcaster *stream.Broadcaster
	metrics     *metrics.Metrics
}

func NewServer(cfg *config.Config, log *slog.Logger, registry *halo.Registry, broadcaster *stream.Broadcaster, m *metrics.Metrics) *Server {
	return &Server{
		cfg:         cfg,
		log:         log,
		registry:    registry,
		broadcaster: broadcaster,
		metrics:     m,
	}
}

// Routes builds the chi router with all endpoints and middleware attached.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(s.metricsMiddleware)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/start", s.handleStart)
		r.Post("/event", s.handleEvent)
		r.Post("/end", s.handleEnd)
		r.Post("/support/ask", s.handleSupportAsk)
		r.Post("/marketing/generate", s.handleMarketingGenerate)
		r.Get("/stream", s.handleStream)
	})

	return r
}
