package dashboard

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a target status is not a member
	// of the enumerated status set.
	ErrInvalidTransition = errors.New("invalid task status")

	// ErrForbidden is returned when the viewer lacks the capability for the
	// requested operation. No state change is applied.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a missing or empty required field on creation.
// It is always recoverable by the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
