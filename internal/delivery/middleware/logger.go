package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"jelpi/config"
	deliverycontext "jelpi/internal/delivery/context"
	domainerrors "jelpi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// redactedQueryParams never reach the access log. A finder's position is
// only forwarded to the owner's notification.
var redactedQueryParams = []string{"lat", "lng"}

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only server failures are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not written the response yet.
			status = statusOf(err)
		}

		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if ownerID, ok := deliverycontext.GetOwnerID(c); ok {
		fields = append(fields, slog.String("owner_id", ownerID.String()))
	}

	if query := redactQuery(req.URL.Query()); query != "" {
		fields = append(fields, slog.String("query", query))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "HTTP Request", fields...)
}

func redactQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}

	for _, key := range redactedQueryParams {
		if values.Has(key) {
			values.Set(key, "redacted")
		}
	}

	return values.Encode()
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
