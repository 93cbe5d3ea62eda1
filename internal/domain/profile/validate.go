// Package profile holds the pure rules around profile variants: resolving what a
// device should show, validating submissions and rendering cards.
package profile

import (
	"jelpi/internal/domain/entity"
	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/domain/validation"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var payloadValidator = validation.New()

// Validate normalizes a submitted payload and checks the required fields and
// formats of its kind. The normalized payload is what must be stored.
func Validate(payload entity.ProfilePayload) (entity.ProfilePayload, error) {
	if payload == nil {
		return nil, domainerrors.ErrInvariantViolation.WithDetails("missing profile payload")
	}

	normalized := payload.Normalize()
	if err := validation.FromError(payloadValidator.Struct(normalized)); err != nil {
		return nil, err
	}

	return normalized, nil
}
