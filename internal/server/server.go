// Package server exposes the asset-matching pipeline over HTTP: routing,
// middleware, request decoding and the error envelope.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/sells-group/sf-asset-bridge/internal/config"
	"github.com/sells-group/sf-asset-bridge/internal/match"
)

// Server holds the HTTP handler and its dependencies.
type Server struct {
	svc     *match.Service
	limiter *rate.Limiter
	router  chi.Router
}

// New builds the Server with routing and middleware wired. The match
// service is injected; the server owns only transport concerns.
func New(cfg config.ServerConfig, svc *match.Service) *Server {
	s := &Server{svc: svc}

	if cfg.RateLimitPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), max(int(cfg.RateLimitPerSec), 1))
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(cors.AllowAll().Handler)

	r.Get("/", s.handleWelcome)
	r.Get("/health", s.handleHealth)
	r.With(s.rateLimit).Post("/match", s.handleMatch)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
