package bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested booking does not exist.
	ErrNotFound = errors.New("booking not found")

	// ErrForbidden is returned when a booking does not belong to the
	// requesting user.
	ErrForbidden = errors.New("booking does not belong to user")

	// ErrInvalidTransition is returned when an operation is attempted from a
	// status the transition table does not permit, or outside the
	// cancellation window.
	ErrInvalidTransition = errors.New("invalid booking state transition")

	// ErrDuplicateReference is returned by the repository when the unique
	// constraint on booking_reference fires. The service retries with a
	// fresh suffix.
	ErrDuplicateReference = errors.New("booking reference already exists")
)

// ValidationError describes malformed booking input. It is always
// recoverable: the caller corrects the field and retries.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
