// ABOUTME: HTTP server for the notebox JSON API and web UI.
// ABOUTME: Wires the route table, middleware chain and graceful shutdown.

package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/harper/notebox/internal/db"
	"github.com/rs/zerolog"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	maxBodyBytes           = 1 << 20
)

// Server maps HTTP requests onto a NoteStore. It keeps no per-request state.
type Server struct {
	store           db.NoteStore
	log             zerolog.Logger
	metrics         *metrics
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

func NewServer(store db.NoteStore, opts ...Option) *Server {
	s := &Server{
		store:           store,
		log:             zerolog.Nop(),
		metrics:         newMetrics(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the full middleware chain around the router.
func (s *Server) Handler() http.Handler {
	// SkipClean keeps dot-only search terms from being redirected away as path segments.
	router := mux.NewRouter().UseEncodedPath().SkipClean(true)
	for _, rt := range s.routes() {
		router.Handle(rt.path, rt.handler).Methods(rt.method).Name(rt.name)
	}
	// The inner recoverer lets route metrics count panics as 500s.
	router.Use(s.metrics.middleware, s.recoverer)
	router.NotFoundHandler = http.HandlerFunc(handleNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handleNotFound)

	return s.requestID(s.accessLog(s.recoverer(router)))
}

// Serve runs the server on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("notebox server listening")

	select {
	case <-ctx.Done():
		s.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
