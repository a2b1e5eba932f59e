package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
)

// drainDefault bounds Shutdown when the caller's context has no deadline.
const drainDefault = 10 * time.Second

// Server is an http.Server with a separate bind step, so callers can log
// the real address before serving and tests can ask for port 0.
type Server struct {
	http   *http.Server
	ln     net.Listener
	logger *slog.Logger
}

func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		http: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
	}
}

// Listen binds the configured address. It is idempotent.
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", s.http.Addr, err)
	}
	s.ln = ln
	return nil
}

// Start serves until Shutdown, binding first if needed. A graceful stop
// returns nil.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.logger.Info("serving HTTP", slog.String("addr", s.Addr()))

	err := s.http.Serve(s.ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serving %s: %w", s.Addr(), err)
}

// Shutdown stops accepting connections and waits for in-flight requests,
// including their TeamForge logoffs, until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, drainDefault)
		defer cancel()
	}
	s.logger.Info("draining HTTP server", slog.String("addr", s.Addr()))
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("draining %s: %w", s.Addr(), err)
	}
	return nil
}

// Addr is the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.http.Addr
}
