// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
	"time"

	domainerrors "jelpi/internal/domain/errors"

	"github.com/google/uuid"
)

// MaxDeviceNameLength bounds the owner-chosen display name.
const MaxDeviceNameLength = 60

// Device is a physical NFC tag owned by a single user.
type Device struct {
	ID                 string       `json:"id"`                   // User-visible tag identifier, e.g. JLP001.
	Class              DeviceClass  `json:"class"`                // Physical form factor of the tag.
	Status             DeviceStatus `json:"status"`               // Lifecycle status.
	OwnerID            uuid.UUID    `json:"owner_id"`             // The user who registered the tag.
	ProfileID          *uuid.UUID   `json:"profile_id"`           // The attached profile, nil while unconfigured.
	ProfileType        ProfileKind  `json:"profile_type"`         // Discriminator that must agree with the attached profile.
	PublicURL          string       `json:"public_url,omitempty"` // Scan URL, assigned on activation.
	ActivationCodeHash string       `json:"-"`                    // bcrypt hash of the activation code printed with the tag.
	Name               string       `json:"name,omitempty"`       // Optional owner-chosen name.
	ActivatedAt        *time.Time   `json:"activated_at"`         // Set once, on the first transition out of inactive.
	LastScannedAt      *time.Time   `json:"last_scanned_at"`      // Maintained by the scan worker.
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// DisplayName returns the owner-chosen name or a name derived from the device class.
func (d *Device) DisplayName() string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}

	return d.Class.DefaultName()
}

// IsOwnedBy reports whether the device belongs to the given user.
func (d *Device) IsOwnedBy(ownerID uuid.UUID) bool {
	return d.OwnerID == ownerID
}

// Activate moves an inactive device to activated and assigns its public URL.
func (d *Device) Activate(now time.Time, publicURL string) error {
	if err := d.transition(DeviceStatusActivated); err != nil {
		return err
	}

	activatedAt := now
	d.ActivatedAt = &activatedAt
	d.PublicURL = publicURL
	d.UpdatedAt = now

	return nil
}

// SelectProfileType commits the device to a profile kind. The choice is one-way:
// repeating the same kind is a no-op, anything else after the first choice is rejected.
func (d *Device) SelectProfileType(kind ProfileKind, now time.Time) error {
	if !kind.IsValid() {
		return domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("profile type %d cannot be selected", kind))
	}

	if d.Status == DeviceStatusInactive {
		return domainerrors.ErrDeviceNotActivated
	}

	if d.ProfileType == kind {
		return nil
	}

	if d.ProfileType != ProfileKindNone {
		return domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("profile type already set to %s", d.ProfileType))
	}

	d.ProfileType = kind
	d.UpdatedAt = now

	return nil
}

// Link attaches a stored profile and moves the device from activated to linked.
func (d *Device) Link(profileID uuid.UUID, kind ProfileKind, now time.Time) error {
	if !d.Status.CanTransitionTo(DeviceStatusLinked) {
		return d.invalidTransition(DeviceStatusLinked)
	}

	if kind == ProfileKindNone || kind != d.ProfileType {
		return domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("profile kind %s does not match device discriminator %s", kind, d.ProfileType))
	}

	d.Status = DeviceStatusLinked
	id := profileID
	d.ProfileID = &id
	d.UpdatedAt = now

	return nil
}

// Rename sets the display name. An empty name restores the class-derived fallback.
func (d *Device) Rename(name string, now time.Time) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) > MaxDeviceNameLength {
		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field: "name",
			Rule:  "max",
			Param: fmt.Sprint(MaxDeviceNameLength),
		})
	}

	d.Name = name
	d.UpdatedAt = now

	return nil
}

// CheckInvariants verifies the cross-field rules of a stored device.
func (d *Device) CheckInvariants() error {
	if !d.Status.IsValid() {
		return domainerrors.ErrInvariantViolation.WithDetails(fmt.Sprintf("unknown status %q", d.Status))
	}

	if d.Status != DeviceStatusInactive && d.ActivatedAt == nil {
		return domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("device %s is %s without activated_at", d.ID, d.Status))
	}

	if d.Status == DeviceStatusLinked && (d.ProfileID == nil || d.ProfileType == ProfileKindNone) {
		return domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("device %s is linked without a profile", d.ID))
	}

	if d.ProfileID != nil && d.ProfileType == ProfileKindNone {
		return domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("device %s references a profile with no discriminator", d.ID))
	}

	return nil
}

func (d *Device) transition(next DeviceStatus) error {
	if !d.Status.CanTransitionTo(next) {
		return d.invalidTransition(next)
	}

	d.Status = next

	return nil
}

func (d *Device) invalidTransition(next DeviceStatus) error {
	return domainerrors.ErrInvalidTransition.WithDetails(
		fmt.Sprintf("device %s cannot move from %s to %s", d.ID, d.Status, next))
}
