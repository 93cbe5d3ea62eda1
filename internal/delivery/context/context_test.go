package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID_StableWithinRequest(t *testing.T) {
	c := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestGetRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-2", GetRequestIDFromContext(WithRequestID(context.Background(), "req-2")))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-3"))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestGetOwnerID(t *testing.T) {
	c := newEchoContext()

	_, ok := GetOwnerID(c)
	assert.False(t, ok)

	SetOwnerID(c, uuid.Nil)
	_, ok = GetOwnerID(c)
	assert.False(t, ok)

	ownerID := uuid.New()
	SetOwnerID(c, ownerID)
	got, ok := GetOwnerID(c)
	assert.True(t, ok)
	assert.Equal(t, ownerID, got)
}
