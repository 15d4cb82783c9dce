// Package api provides the mock API HTTP server used as a stand-in backend
// when exercising fullstack tooling.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spboyer/mockapi/internal/config"
	"github.com/spboyer/mockapi/internal/logger"
)

// Server is the mock API server. Handlers are stateless; the only
// configuration consumed after startup is the service name echoed in
// response payloads.
type Server struct {
	config config.Config
	server *http.Server
	log    *logger.Logger
}

// New creates a new Server instance.
func New(cfg config.Config) (*Server, error) {
	if err := config.ValidatePort(cfg.Server.Port); err != nil {
		return nil, err
	}

	return &Server{
		config: cfg,
		log:    logger.WithField("component", "api"),
	}, nil
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
}

// URL returns the base URL clients should use to reach the server.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s", s.Addr())
}

// Handler returns the fully wired handler, including middleware. Exposed so
// tests can drive the server without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// GET /{$} matches the root path only; a bare "GET /" would swallow
	// every unregistered path and break 404 behavior.
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /api/data", s.handleData)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	return s.withMiddleware(mux)
}

// Start starts the HTTP server and blocks until it stops. The only expected
// failure is a bind error at startup.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// withMiddleware adds CORS headers and request logging to all requests.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Preflight requests succeed with no body.
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.Debug("%s %s %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// JSON response helper
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
