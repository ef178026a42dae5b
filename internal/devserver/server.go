// Package devserver hosts the development HTTP server and the pre-start
// hook point the generation cycle attaches to.
package devserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Hook runs before the server starts listening. Hooks cannot abort startup:
// whatever happens inside one, the server comes up afterwards.
type Hook func(ctx context.Context)

// Server wraps the development HTTP server.
type Server struct {
	addr     string
	log      *slog.Logger
	server   *http.Server
	preStart []Hook
}

// New creates a development server around the given handler.
func New(addr string, handler http.Handler, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		addr: addr,
		log:  log,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// OnPreStart registers a hook to run, in registration order, before the
// listen loop starts.
func (s *Server) OnPreStart(h Hook) {
	s.preStart = append(s.preStart, h)
}

// Start runs all pre-start hooks and then begins listening for incoming
// HTTP requests.
func (s *Server) Start(ctx context.Context) error {
	for _, h := range s.preStart {
		h(ctx)
	}
	s.log.Info("dev server starting", "addr", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
