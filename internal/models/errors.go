package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an update or delete references an id that
	// is not present in the collection.
	ErrNotFound = errors.New("record not found")

	// ErrBackendUnavailable is returned when the persistence backend cannot
	// be reached.
	ErrBackendUnavailable = errors.New("storage backend unavailable")

	// ErrInvalidCredentials is returned for every authentication failure.
	// It deliberately does not distinguish an unknown email from a wrong
	// password, to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed field or a violated uniqueness rule.
// It is raised before any write, so a failed validation never mutates a
// collection.
type ValidationError struct {
	Field   string
	Message string
	// Conflict marks a duplicate unique key (email, plate, patient
	// name+phone) as opposed to a malformed field.
	Conflict bool
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func NewConflictError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Conflict: true}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
