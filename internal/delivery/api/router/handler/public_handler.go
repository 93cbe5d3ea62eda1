package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"jelpi/internal/delivery/api/response"
	deliverycontext "jelpi/internal/delivery/context"
	"jelpi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	PublicProfileUC usecase.PublicProfileUsecase
	Logger          *slog.Logger
}

// PublicHandler serves the page opened by scanning a tag
type PublicHandler struct {
	publicProfileUC usecase.PublicProfileUsecase
	logger          *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	return &PublicHandler{
		publicProfileUC: params.PublicProfileUC,
		logger:          params.Logger,
	}
}

// ViewProfile handles an anonymous scan. The optional lat and lng query
// parameters are forwarded to the owner's scan alert.
func (h *PublicHandler) ViewProfile(c echo.Context) error {
	location := h.scanLocation(c)

	profile, err := h.publicProfileUC.ViewProfile(c.Request().Context(), c.Param("id"), location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// scanLocation parses the shared location. A partial or unparsable pair is ignored.
func (h *PublicHandler) scanLocation(c echo.Context) *orb.Point {
	latParam, lngParam := c.QueryParam("lat"), c.QueryParam("lng")
	if latParam == "" && lngParam == "" {
		return nil
	}

	lat, latErr := strconv.ParseFloat(latParam, 64)
	lng, lngErr := strconv.ParseFloat(lngParam, 64)
	if latErr != nil || lngErr != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Ignoring scan location",
			slog.String("lat", latParam),
			slog.String("lng", lngParam),
		)

		return nil
	}

	return &orb.Point{lng, lat}
}
