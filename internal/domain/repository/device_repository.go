// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"jelpi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a newly registered device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its tag identifier.
	FindDeviceByID(ctx context.Context, id string) (*entity.Device, error)

	// FindDevicesByOwner retrieves every device of an owner, newest first.
	FindDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// UpdateDevice writes the mutable fields of a device.
	UpdateDevice(ctx context.Context, device *entity.Device) error

	// TouchLastScanned moves last_scanned_at forward to at. Older timestamps are ignored.
	TouchLastScanned(ctx context.Context, id string, at time.Time) error
}
