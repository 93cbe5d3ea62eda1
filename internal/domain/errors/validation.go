package errors

import (
	"net/http"
	"strings"
)

// FieldViolation names one rejected input field.
type FieldViolation struct {
	Field string `json:"field"`           // Wire name of the field, e.g. "grupoSanguineo".
	Rule  string `json:"rule"`            // Failed rule, e.g. "required" or "phone".
	Param string `json:"param,omitempty"` // Rule parameter, if any.
}

// ValidationError reports missing or malformed fields on a submission.
// It implements AppError so it can travel through the same handlers.
type ValidationError struct {
	fields []FieldViolation
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields ...FieldViolation) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Revisa los campos marcados"
}

// Details lists the offending fields as "field (rule)".
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+" ("+f.Rule+")")
	}

	return strings.Join(parts, ", ")
}

// Fields returns the violations in the order they were found.
func (e *ValidationError) Fields() []FieldViolation {
	return e.fields
}

// HasField reports whether the named field was rejected.
func (e *ValidationError) HasField(name string) bool {
	for _, f := range e.fields {
		if f.Field == name {
			return true
		}
	}

	return false
}
