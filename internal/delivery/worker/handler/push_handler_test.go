package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jelpi/config"
	deliverycontext "jelpi/internal/delivery/context"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/service"
	"jelpi/internal/infra/pubsub"
	mockUC "jelpi/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockScanUsecase) {
	scanUC := mockUC.NewMockScanUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ScanUC: scanUC,
	})

	return h, scanUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := pubsub.PushEnvelope{
		Message: pubsub.PushedMessage{
			Data:       data,
			MessageID:  "msg-1",
			Attributes: attributes,
		},
		Subscription: "projects/jelpi/subscriptions/scan-worker",
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DeliversScanEvent(t *testing.T) {
	h, scanUC := newTestPushHandler(t)

	scanUC.EXPECT().
		RecordScan(mock.Anything, mock.MatchedBy(func(e *service.DeviceEvent) bool {
			return e.Type == service.DeviceEventScanned && e.DeviceID == "ACT-123456" && e.EventID == "evt-1"
		})).
		Run(func(ctx context.Context, _ *service.DeviceEvent) {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))
		}).
		Return(nil)

	rec := servePush(h, pushBody(t, service.DeviceEvent{
		RequestID: "req-from-event",
		EventID:   "evt-1",
		Type:      service.DeviceEventScanned,
		DeviceID:  "ACT-123456",
	}, map[string]string{"request_id": "req-from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_FallsBackToMessageID(t *testing.T) {
	h, scanUC := newTestPushHandler(t)

	scanUC.EXPECT().
		RecordScan(mock.Anything, mock.MatchedBy(func(e *service.DeviceEvent) bool {
			return e.EventID == "msg-1"
		})).
		Run(func(ctx context.Context, _ *service.DeviceEvent) {
			assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := servePush(h, pushBody(t, service.DeviceEvent{
		RequestID: "req-from-event",
		Type:      service.DeviceEventScanned,
		DeviceID:  "ACT-123456",
	}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "database failure retries", err: errors.Wrap(assert.AnError, "failed to record scan"), status: http.StatusServiceUnavailable},
		{name: "integrity failure retries", err: domainerrors.ErrInvariantViolation, status: http.StatusServiceUnavailable},
		{name: "malformed event is acknowledged", err: domainerrors.ErrMalformedPayload, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, scanUC := newTestPushHandler(t)
			scanUC.EXPECT().RecordScan(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, service.DeviceEvent{
				EventID: "evt-2", Type: service.DeviceEventScanned, DeviceID: "ACT-123456",
			}, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPushHandler_BadEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenOutsideDevelop(t *testing.T) {
	scanUC := mockUC.NewMockScanUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google", PushAudience: "https://worker.jelpi.com.mx/push"}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ScanUC: scanUC,
	})
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.verifyToken = func(_ *http.Request, audience string) error {
		gotAudience = audience
		return errors.New("bad token")
	}

	rec := servePush(h, pushBody(t, service.DeviceEvent{Type: service.DeviceEventScanned, DeviceID: "ACT-123456"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://worker.jelpi.com.mx/push", gotAudience)
	scanUC.AssertNotCalled(t, "RecordScan", mock.Anything, mock.Anything)
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req, ""))

	req.Header.Set("Authorization", "Basic abc")
	require.Error(t, verifyPubSubToken(req, ""))
}
