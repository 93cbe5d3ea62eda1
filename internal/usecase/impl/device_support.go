// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	deliverycontext "jelpi/internal/delivery/context"
	"jelpi/internal/domain/display"
	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/profile"
	"jelpi/internal/domain/repository"
	"jelpi/internal/domain/service"
	"jelpi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// normalizeDeviceID canonicalizes the identifier printed on a tag.
func normalizeDeviceID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// publicURLFor joins the public profile base URL and a device id.
func publicURLFor(baseURL, deviceID string) string {
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(deviceID)
}

// findDevice loads a device and checks its stored invariants.
func findDevice(ctx context.Context, deviceRepo repository.DeviceRepository, deviceID string) (*entity.Device, error) {
	device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound.WithDetails("device " + deviceID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	if err := device.CheckInvariants(); err != nil {
		return nil, err
	}

	return device, nil
}

// findOwnedDevice loads a device and verifies it belongs to ownerID.
func findOwnedDevice(ctx context.Context, deviceRepo repository.DeviceRepository, ownerID uuid.UUID, deviceID string) (*entity.Device, error) {
	device, err := findDevice(ctx, deviceRepo, deviceID)
	if err != nil {
		return nil, err
	}

	if !device.IsOwnedBy(ownerID) {
		return nil, domainerrors.ErrForbidden.WithDetails("device " + deviceID + " belongs to another owner")
	}

	return device, nil
}

// findAttachedProfile loads the profile the device points to, or nil when there is none.
// A dangling or foreign reference is an integrity failure.
func findAttachedProfile(ctx context.Context, profileRepo repository.ProfileRepository, device *entity.Device) (*entity.ProfileVariant, error) {
	if device.ProfileID == nil {
		return nil, nil
	}

	variant, err := profileRepo.FindProfileByID(ctx, *device.ProfileID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrInvariantViolation.WithDetails(
			"device " + device.ID + " references missing profile " + device.ProfileID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	if variant.DeviceID != device.ID {
		return nil, domainerrors.ErrInvariantViolation.WithDetails(
			"profile " + variant.ID.String() + " belongs to device " + variant.DeviceID)
	}

	return variant, nil
}

// buildDeviceView resolves the device's profile state and renders the card when it can be displayed.
func buildDeviceView(device *entity.Device, variant *entity.ProfileVariant) (*usecase.DeviceView, error) {
	resolution, err := profile.Resolve(device.ProfileType, variant)
	if err != nil {
		return nil, err
	}

	view := &usecase.DeviceView{
		Device:     device,
		Labels:     display.ForDevice(device),
		Resolution: resolution,
	}

	if resolution.State == profile.StateDisplay {
		card, err := profile.Render(resolution.Variant)
		if err != nil {
			return nil, err
		}
		view.Card = &card
	}

	return view, nil
}

// isIntegrityError reports errors that point at a bug or corrupt data rather than bad input.
func isIntegrityError(err error) bool {
	return errors.Is(err, domainerrors.ErrInvalidTransition) || errors.Is(err, domainerrors.ErrInvariantViolation)
}

// logOutcome logs integrity failures at error level and everything else at debug.
func logOutcome(ctx context.Context, logger *slog.Logger, operation, deviceID string, err error) {
	if isIntegrityError(err) {
		logger.ErrorContext(ctx, "Device operation violated an integrity rule",
			slog.String("operation", operation),
			slog.String("deviceID", deviceID),
			slog.Any("error", err),
		)

		return
	}

	logger.DebugContext(ctx, "Device operation rejected",
		slog.String("operation", operation),
		slog.String("deviceID", deviceID),
		slog.Any("error", err),
	)
}

// newDeviceEvent builds an event for device, stamped with the request id of ctx.
func newDeviceEvent(ctx context.Context, eventType service.DeviceEventType, device *entity.Device, at time.Time) *service.DeviceEvent {
	return &service.DeviceEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		DeviceID:    device.ID,
		OwnerID:     device.OwnerID.String(),
		ProfileKind: device.ProfileType,
		OccurredAt:  at,
	}
}

// publishQuietly publishes event and only logs a failure. The state change it
// reports is already committed.
func publishQuietly(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.DeviceEvent) {
	if err := publisher.PublishDeviceEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish device event",
			slog.String("type", string(event.Type)),
			slog.String("deviceID", event.DeviceID),
			slog.Any("error", err),
		)
	}
}
