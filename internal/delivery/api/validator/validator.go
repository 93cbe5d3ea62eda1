// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"jelpi/internal/domain/validation"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator installed on the echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.New()}
}

// Validate implements echo.Validator. Failures come back as a domain ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	return validation.FromError(cv.validate.Struct(i))
}
