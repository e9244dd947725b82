package bookings

import (
	"errors"
	"strings"
)

var (
	// ErrMissingFields is matched by every ValidationError.
	ErrMissingFields = errors.New("please fill in all required fields")

	// ErrInvalidStatus is returned for a status outside the fixed enumeration.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrBookingNotFound is returned when no row matches the booking id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrIllegalTransition is returned by the strict policy for a disallowed move.
	ErrIllegalTransition = errors.New("status transition not allowed")
)

// ValidationError lists the required form fields that were left blank.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Missing, ", ")
}

// Is lets callers test with errors.Is(err, ErrMissingFields).
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingFields
}
