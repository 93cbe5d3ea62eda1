package pubsub

import (
	"encoding/json"
	"time"

	"jelpi/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Pub/Sub POSTs to a push subscription. The local
// publisher produces the same shape so the scan worker cannot tell them apart.
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage is the message inside a PushEnvelope. Data travels base64
// encoded, which encoding/json does for []byte.
type PushedMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewPushEnvelope wraps event the way a push subscription would deliver it.
func NewPushEnvelope(event *service.DeviceEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode device event")
	}

	return &PushEnvelope{
		Message: PushedMessage{
			Data:        data,
			Attributes:  eventAttributes(event),
			MessageID:   event.EventID,
			PublishTime: publishedAt.UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}, nil
}

// DeviceEvent decodes the carried event. Events published without an id take
// the Pub/Sub message id so redeliveries share one.
func (e *PushEnvelope) DeviceEvent() (*service.DeviceEvent, error) {
	var event service.DeviceEvent
	if err := json.Unmarshal(e.Message.Data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode device event")
	}

	if event.EventID == "" {
		event.EventID = e.Message.MessageID
	}

	return &event, nil
}

// Attribute returns a message attribute, or "" when absent.
func (e *PushEnvelope) Attribute(key string) string {
	return e.Message.Attributes[key]
}

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *service.DeviceEvent) map[string]string {
	attributes := map[string]string{
		"event_id":  event.EventID,
		"type":      string(event.Type),
		"device_id": event.DeviceID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
