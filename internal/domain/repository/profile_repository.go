package repository

import (
	"context"

	"jelpi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile variant is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile variant storage.
type ProfileRepository interface {
	// CreateProfile persists a new profile variant.
	CreateProfile(ctx context.Context, profile *entity.ProfileVariant) error

	// FindProfileByID retrieves a profile variant with its payload decoded.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.ProfileVariant, error)

	// UpdateProfile replaces the payload of an existing profile variant.
	UpdateProfile(ctx context.Context, profile *entity.ProfileVariant) error
}
