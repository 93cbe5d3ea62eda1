package middleware

import (
	"log/slog"

	deliverycontext "jelpi/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds the client supplied id copied into every log line.
const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id, echoes it back in
// X-Request-Id and attaches a logger carrying it to the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process is the echo middleware func.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := acceptRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// acceptRequestID keeps a caller's id when it is short printable ASCII and
// mints a new one otherwise. Pub/Sub and the mobile app both send their own.
func acceptRequestID(candidate string) string {
	if candidate == "" || len(candidate) > maxRequestIDLength {
		return uuid.NewString()
	}

	for i := 0; i < len(candidate); i++ {
		if candidate[i] < 0x21 || candidate[i] > 0x7e {
			return uuid.NewString()
		}
	}

	return candidate
}
