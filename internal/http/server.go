// Package http exposes the engine as a JSON API. Identity is an opaque
// X-User-ID header supplied by the session layer in front of this service;
// there is no authentication here.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"satnica/internal/middleware/ratelimit"
	"satnica/internal/middleware/security"
	"satnica/internal/services"
)

type Server struct {
	http.Server
	entries *services.EntryService
	limiter *ratelimit.Limiter
}

func NewServer(addr string, entries *services.EntryService) *Server {
	s := &Server{
		entries: entries,
		limiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware)
	r.Use(s.limiter.Middleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/records", s.handleSubmitEntry)
		r.Get("/records", s.handleListRecords)
		r.Get("/summaries/monthly", s.handleMonthlySummaries)
	})

	s.Server = http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Shutdown stops the listener and the rate limiter's cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.Server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
