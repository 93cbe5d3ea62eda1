package profile

import (
	"fmt"

	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
)

// State is the outcome of resolving a device's profile.
type State int

const (
	// StateSelectionRequired means the owner must pick one of the profile kinds.
	StateSelectionRequired State = iota + 1
	// StateCreationRequired means the kind is chosen but no profile is stored yet.
	StateCreationRequired
	// StateDisplay means a complete profile can be shown.
	StateDisplay
)

// String returns the wire name of the state.
func (s State) String() string {
	switch s {
	case StateSelectionRequired:
		return "selection_required"
	case StateCreationRequired:
		return "creation_required"
	case StateDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Resolution is exactly one of SelectionRequired, CreationRequired(kind) or Display(variant).
type Resolution struct {
	State   State                  `json:"state"`
	Kind    entity.ProfileKind     `json:"kind"`
	Variant *entity.ProfileVariant `json:"variant,omitempty"`
}

// Resolve decides what a device with the given discriminator and stored profile must show.
func Resolve(discriminator entity.ProfileKind, stored *entity.ProfileVariant) (Resolution, error) {
	if !discriminator.InRange() {
		return Resolution{}, domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("discriminator %d is out of range", int(discriminator)))
	}

	if discriminator == entity.ProfileKindNone {
		if stored != nil {
			return Resolution{}, domainerrors.ErrInvariantViolation.WithDetails(
				fmt.Sprintf("profile %s is stored but no discriminator is set", stored.ID))
		}

		return Resolution{State: StateSelectionRequired, Kind: entity.ProfileKindNone}, nil
	}

	if stored == nil {
		return Resolution{State: StateCreationRequired, Kind: discriminator}, nil
	}

	if stored.Kind() != discriminator {
		return Resolution{}, domainerrors.ErrInvariantViolation.WithDetails(
			fmt.Sprintf("profile %s is %s but the device expects %s", stored.ID, stored.Kind(), discriminator))
	}

	return Resolution{State: StateDisplay, Kind: discriminator, Variant: stored}, nil
}
