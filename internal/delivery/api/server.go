package api

import (
	"log/slog"

	"jelpi/config"
	"jelpi/internal/delivery"
	apimiddleware "jelpi/internal/delivery/api/middleware"
	"jelpi/internal/delivery/api/router"
	"jelpi/internal/delivery/api/validator"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the server for the owner API and the public profile page.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	// Public profile pages are opened from any origin a tag is scanned in.
	e.Use(echomiddleware.CORS())

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return delivery.NewEchoServer(params.Lc, params.Cfg, params.Logger, "api", e,
		delivery.WithH2C(params.Cfg.HTTP.Timeouts.IdleTimeout),
	), nil
}
