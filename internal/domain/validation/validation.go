// Package validation builds the shared struct validator and maps its failures to
// domain validation errors keyed by wire field names.
package validation

import (
	"reflect"
	"strings"

	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	minPhoneDigits    = 7
	maxPhoneDigits    = 15
	maxDeviceIDLength = 32
)

// New returns a validator that reports JSON field names and knows the "phone"
// and "deviceid" rules.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("deviceid", validateDeviceID)

	return v
}

// IsPhone reports whether s looks like a dialable phone number.
func IsPhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

// IsDeviceID reports whether s, once trimmed, is a printable tag identifier:
// 1 to 32 ASCII letters, digits or hyphens.
func IsDeviceID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxDeviceIDLength {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
		default:
			return false
		}
	}

	return true
}

func validateDeviceID(fl validator.FieldLevel) bool {
	return IsDeviceID(fl.Field().String())
}

// FromError converts validator failures into a *domainerrors.ValidationError.
// Other errors are returned unchanged and nil stays nil.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return domainerrors.NewValidationError(violations...)
}
