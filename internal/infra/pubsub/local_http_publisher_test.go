package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jelpi/config"
	"jelpi/internal/domain/entity"
	"jelpi/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishDeviceEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	location := orb.Point{-99.1332, 19.4326}
	event := &service.DeviceEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.DeviceEventScanned,
		DeviceID:    "ACT-123456",
		OwnerID:     "5f0c6a52-3a43-4d8b-9a59-6f1f5b3f6c1e",
		ProfileKind: entity.ProfileKindPet,
		OccurredAt:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Location:    &location,
	}

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishDeviceEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"type":       "device.scanned",
		"device_id":  "ACT-123456",
		"request_id": "req-1",
	}, received.Message.Attributes)

	assert.Equal(t, localSubscription, received.Subscription)

	decoded, err := received.DeviceEvent()
	require.NoError(t, err)
	assert.Equal(t, event.DeviceID, decoded.DeviceID)
	assert.Equal(t, entity.ProfileKindPet, decoded.ProfileKind)
	require.NotNil(t, decoded.Location)
	assert.InDelta(t, location.Lat(), decoded.Location.Lat(), 1e-9)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishDeviceEvent(context.Background(), &service.DeviceEvent{EventID: "evt-2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestPushEnvelope_DeviceEventTakesMessageID(t *testing.T) {
	envelope, err := NewPushEnvelope(&service.DeviceEvent{Type: service.DeviceEventScanned, DeviceID: "ACT-123456"},
		localSubscription, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14T10:00:00Z", envelope.Message.PublishTime)
	assert.Empty(t, envelope.Attribute("request_id"))

	envelope.Message.MessageID = "msg-9"
	event, err := envelope.DeviceEvent()
	require.NoError(t, err)
	assert.Equal(t, "msg-9", event.EventID)

	envelope.Message.Data = []byte("[1,2]")
	_, err = envelope.DeviceEvent()
	require.Error(t, err)
}

func TestNewEventPublisher_Config(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
	}{
		{name: "unset falls back to noop"},
		{name: "empty provider falls back to noop", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "localEndpoint"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "jelpi"}, wantErr: "topicId"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(testLogger())
	assert.NoError(t, publisher.PublishDeviceEvent(context.Background(), &service.DeviceEvent{EventID: "evt-3"}))
	assert.NoError(t, publisher.Close())
}
