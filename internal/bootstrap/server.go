package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Server serves the console API until its context ends, then drains
// in-flight requests and runs the registered shutdown hooks in order.
type Server struct {
	http            *http.Server
	audit           AuditLogger
	logger          *zap.Logger
	shutdownTimeout time.Duration
	hooks           []func()
}

func NewServer(handler http.Handler, cfg ServerConfig, audit AuditLogger, logger *zap.Logger) *Server {
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	return &Server{
		http: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		audit:           audit,
		logger:          logger,
		shutdownTimeout: timeout,
	}
}

// OnShutdown registers fn to run after the listener is closed.
func (s *Server) OnShutdown(fn func()) {
	if fn != nil {
		s.hooks = append(s.hooks, fn)
	}
}

func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is done. A listener failure is returned
// as is; the hooks run either way.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.runHooks()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server running", zap.String("addr", ln.Addr().String()))
		serveErr <- s.http.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown requested", zap.Error(context.Cause(ctx)))
	s.audit.Log(context.WithoutCancel(ctx), AuditLog{
		Action:  AuditServerShutdown,
		Message: "Server is shutting down",
		Meta:    map[string]any{"reason": context.Cause(ctx).Error()},
	})

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("forced shutdown", zap.Error(err))
		return err
	}
	s.logger.Info("server exited gracefully")
	return nil
}

func (s *Server) runHooks() {
	for _, fn := range s.hooks {
		fn()
	}
}
