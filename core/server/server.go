package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/webroot/core/logger"
)

// Server hosts a single http.Handler with graceful shutdown.
// Safe for concurrent use.
type Server struct {
	mu              sync.RWMutex
	addr            string
	logger          *slog.Logger
	shutdownTimeout time.Duration
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	maxHeaderBytes  int

	// Set while running.
	httpServer *http.Server
	listener   net.Listener
}

// New creates a Server for addr. Without options it uses the Default*
// timeouts and a logger that discards output.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		logger:          logger.Discard(),
		shutdownTimeout: DefaultShutdownTimeout,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}

	return s
}

// Addr returns the address the server listens on. Once started it reports
// the bound address, so ":0" resolves to the chosen port.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// listen binds the address and records the running server.
func (s *Server) listen(handler http.Handler) (*http.Server, net.Listener, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return nil, nil, ErrServerAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, nil, errors.Join(ErrListen, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           handler,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      s.writeTimeout,
		IdleTimeout:       s.idleTimeout,
		MaxHeaderBytes:    s.maxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	return s.httpServer, ln, nil
}

// release forgets the running server if it is still srv.
func (s *Server) release(srv *http.Server) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer == srv {
		s.httpServer = nil
		s.listener = nil
	}
}

// Start serves handler until ctx is done or the server fails. It returns
// ctx.Err() on cancellation without shutting down; call Stop for that.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	srv, ln, err := s.listen(handler)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "starting server",
		logger.Component("server"),
		slog.String("addr", ln.Addr().String()),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- errors.Join(ErrHTTPServer, err)
		}
	}()

	select {
	case err := <-errCh:
		s.release(srv)
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains in-flight requests for up to the shutdown timeout.
// It is a no-op when the server is not running.
func (s *Server) Stop() error {
	s.mu.RLock()
	srv := s.httpServer
	s.mu.RUnlock()

	if srv == nil {
		return nil
	}
	defer s.release(srv)

	s.logger.Info("shutting down server gracefully",
		logger.Component("server"),
		slog.Duration("timeout", s.shutdownTimeout),
	)

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown error", logger.Component("server"), logger.Error(err))
		return errors.Join(ErrHTTPShutdown, err)
	}

	s.logger.Info("server shutdown complete", logger.Component("server"))
	return nil
}

// Run adapts the server to errgroup.Go. The returned function serves until
// ctx is cancelled, then shuts down gracefully and returns nil.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		err := s.Start(ctx, handler)
		if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return s.Stop()
		}
		return err
	}
}

// Run creates a server with default settings and blocks until ctx is done.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr).Run(ctx, handler)()
}
