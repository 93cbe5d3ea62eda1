// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"
	"encoding/json"

	"jelpi/internal/domain/display"
	"jelpi/internal/domain/entity"
	"jelpi/internal/domain/profile"

	"github.com/google/uuid"
)

// RegisterDeviceInput is what an owner types when adding a tag to the account.
type RegisterDeviceInput struct {
	ID             string             `json:"id" validate:"required,deviceid"`
	Class          entity.DeviceClass `json:"class" validate:"required,oneof=pin card bracelet keychain"`
	ActivationCode string             `json:"activationCode" validate:"required,min=4,max=64"`
	Name           string             `json:"name" validate:"max=60"`
}

// ProfileSubmission is a profile payload as received from a client.
type ProfileSubmission struct {
	// Kind of the payload. Zero means the device's current discriminator.
	Kind entity.ProfileKind
	Data json.RawMessage
}

// DeviceView is a device with everything an owner screen needs.
type DeviceView struct {
	Device     *entity.Device       `json:"device"`
	Labels     display.DeviceLabels `json:"labels"`
	Resolution profile.Resolution   `json:"resolution"`
	Card       *profile.Card        `json:"card,omitempty"` // Only for linked devices.
}

// DeviceUsecase defines the interface for owner-side device management use cases
type DeviceUsecase interface {
	// RegisterDevice adds an inactive tag to the owner's account
	RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *RegisterDeviceInput) (*DeviceView, error)

	// ListDevices returns the owner's devices, newest first
	ListDevices(ctx context.Context, ownerID uuid.UUID) ([]*DeviceView, error)

	// GetDevice loads one device with its resolved profile state
	GetDevice(ctx context.Context, ownerID uuid.UUID, deviceID string) (*DeviceView, error)

	// ActivateDevice checks the activation code and moves the device to activated
	ActivateDevice(ctx context.Context, ownerID uuid.UUID, deviceID, activationCode string) (*DeviceView, error)

	// SelectProfileType commits the device to a profile kind
	SelectProfileType(ctx context.Context, ownerID uuid.UUID, deviceID string, kind entity.ProfileKind) (*DeviceView, error)

	// SaveProfile validates and stores the profile, linking the device on first save
	SaveProfile(ctx context.Context, ownerID uuid.UUID, deviceID string, submission *ProfileSubmission) (*DeviceView, error)

	// RenameDevice sets or clears the device display name
	RenameDevice(ctx context.Context, ownerID uuid.UUID, deviceID, name string) (*DeviceView, error)

	// SetDeviceStatus moves the device one step forward in its lifecycle
	SetDeviceStatus(ctx context.Context, ownerID uuid.UUID, deviceID string, status entity.DeviceStatus) (*DeviceView, error)

	// GetDeviceQR renders the QR code of the device's public URL
	GetDeviceQR(ctx context.Context, ownerID uuid.UUID, deviceID string) ([]byte, error)

	// GetProfile loads a stored profile variant of one of the owner's devices
	GetProfile(ctx context.Context, ownerID uuid.UUID, profileID uuid.UUID) (*entity.ProfileVariant, error)
}
