// internal/httpserver/server.go
//
// HTTP wiring for the daily word backend.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery,
//     timeouts, request logging, JSON content type, per-IP rate limit).
//   - Public endpoints: "/" (service listing), "/healthz".
//   - Game endpoints: POST /tentar, POST /desistir, GET /stats,
//     POST /reiniciar (see routes_game.go).
//   - Anonymous session cookie carrying a signed token (session.go).

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/palavradodia/go-server/internal/challenge"
	"github.com/palavradodia/go-server/internal/config"
	"github.com/palavradodia/go-server/internal/game"
)

// Options carries the collaborators the server needs.
type Options struct {
	Engine      *game.Engine
	Clock       *challenge.Clock
	Config      *config.Config
	LexiconSize int // dictionary words loaded
	ModelWords  int // embedding vocabulary size
}

// Server bundles the router and game engine.
type Server struct {
	r     *chi.Mux
	srv   *http.Server
	opts  Options
	start time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{r: chi.NewRouter(), opts: opts, start: time.Now()}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", s.handleIndex)
	s.r.Get("/healthz", s.handleHealth)

	limited := s.r.With(rateLimit(opts.Config.RateLimitRPS, opts.Config.RateLimitBurst))
	limited.Post("/tentar", s.handleTentar)
	limited.Post("/desistir", s.handleDesistir)
	limited.Post("/reiniciar", s.handleReiniciar)
	s.r.Get("/stats", s.handleStats)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"erro": "rota não encontrada", "path": r.URL.Path})
	})

	s.srv = &http.Server{
		Addr:              opts.Config.HTTPAddr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Run serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests with a bounded grace period.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// handleIndex lists the service surface.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service":   "palavra-do-dia",
		"endpoints": []string{"/healthz", "POST /tentar", "POST /desistir", "POST /reiniciar", "GET /stats"},
	})
}

// handleHealth reports liveness plus a few load-time counters.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"uptime":      time.Since(s.start).Truncate(time.Second).String(),
		"dictionary":  s.opts.LexiconSize,
		"model_words": s.opts.ModelWords,
		"day":         s.opts.Engine.Day(),
	})
}

// ---------------------------- middleware -----------------------------

// jsonContentType sets a default JSON Content-Type on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", chimw.GetReqID(r.Context())).
				Msg("http request")
		}()
		next.ServeHTTP(ww, r)
	})
}
