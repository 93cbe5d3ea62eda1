package service

import (
	"context"
	"time"

	"jelpi/internal/domain/entity"

	"github.com/paulmach/orb"
)

// DeviceEventType names the device lifecycle and scan events.
type DeviceEventType string

const (
	// DeviceEventActivated is emitted after a successful activation.
	DeviceEventActivated DeviceEventType = "device.activated"
	// DeviceEventLinked is emitted when a profile is first attached.
	DeviceEventLinked DeviceEventType = "device.linked"
	// DeviceEventScanned is emitted on every public profile view.
	DeviceEventScanned DeviceEventType = "device.scanned"
)

// DeviceEvent represents an event to be processed by the scan worker
type DeviceEvent struct {
	RequestID   string             `json:"request_id,omitempty"` // For distributed tracing
	EventID     string             `json:"event_id"`
	Type        DeviceEventType    `json:"type"`
	DeviceID    string             `json:"device_id"`
	OwnerID     string             `json:"owner_id"`
	ProfileKind entity.ProfileKind `json:"profile_kind"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Location    *orb.Point         `json:"location,omitempty"` // Only set on scans that shared a location.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeviceEvent publishes a device event for async processing
	PublishDeviceEvent(ctx context.Context, event *DeviceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
