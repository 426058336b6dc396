package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/0xalexb/hjarta-conf/listener/middleware"
)

// ReadHeaderTimeout is the default timeout for reading request headers.
const ReadHeaderTimeout = 10 * time.Second

// Server manages an HTTP server lifecycle.
type Server struct {
	name       string
	config     Config
	server     *http.Server
	listener   net.Listener
	logger     *slog.Logger
	onServeErr func()
}

// NewServer creates a new Server with the given name, handler, and config.
// It sets config defaults, validates the config, and wraps handler with request
// IDs, access logging, panic recovery, optional rate limiting and a request
// timeout.
// The onServeErr callback, if non-nil, is called when the background Serve goroutine encounters a fatal error.
func NewServer(name string, handler http.Handler, cfg Config, onServeErr func()) (*Server, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if handler == nil {
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With(slog.String("listener", name))

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(logger),
	}

	if cfg.RequestsPerSecond > 0 {
		chain = append(chain, middleware.RateLimit(cfg.RequestsPerSecond, cfg.Burst))
	}

	chain = append(chain, middleware.Timeout(cfg.Timeout))

	return &Server{
		name:   name,
		config: cfg,
		server: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Addr:              cfg.Address,
			Handler:           middleware.Chain(handler, chain...),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		listener:   nil,
		logger:     logger,
		onServeErr: onServeErr,
	}, nil
}

// Addr returns the bound address once Start succeeded, or the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.server.Addr
}

// Start begins listening on TCP and serves HTTP requests in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	listener, err := listenCfg.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		s.logger.Error("failed to listen", "address", s.server.Addr, "error", err)

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	s.listener = listener

	s.logger.Info("starting HTTP listener", "address", listener.Addr().String())

	go func() {
		serveErr := s.server.Serve(listener)
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			s.logger.Error("HTTP listener error", "error", serveErr)

			if s.onServeErr != nil {
				s.onServeErr()
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP listener")

	err := s.server.Shutdown(ctx)
	if err != nil {
		s.logger.Error("shutdown failed", "error", err)

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
