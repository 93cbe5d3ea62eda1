package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"jelpi/config"
	"jelpi/internal/delivery/middleware"
	"jelpi/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEcho returns an echo instance carrying the middleware every jelpi server
// runs: panic recovery, request id, access log and the body size limit.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: the request id must exist before the access log reads it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	return e
}

// EchoServer runs an echo instance as a Delivery and stops it with the fx app.
type EchoServer struct {
	name   string
	addr   string
	h2     *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// EchoServerOption configures an EchoServer.
type EchoServerOption func(*EchoServer)

// WithH2C serves HTTP/2 over cleartext, for deployments behind a proxy that
// terminates TLS.
func WithH2C(idleTimeout time.Duration) EchoServerOption {
	return func(s *EchoServer) {
		s.h2 = &http2.Server{IdleTimeout: idleTimeout}
	}
}

// NewEchoServer wraps e and registers its graceful shutdown on lc.
func NewEchoServer(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, name string, e *echo.Echo, opts ...EchoServerOption) *EchoServer {
	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		echo:   e,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.Hook{OnStop: s.stop})

	return s
}

// Handler exposes the routed echo instance.
func (s *EchoServer) Handler() http.Handler {
	return s.echo
}

// Serve listens until the server is shut down.
func (s *EchoServer) Serve(_ context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("server", s.name), slog.String("host_port", s.addr))

	var err error
	if s.h2 != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2)
	} else {
		err = s.echo.Start(s.addr)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server", slog.String("server", s.name))

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
