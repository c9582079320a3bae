package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotFound is returned when the requested service does not exist.
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInsufficientLeadTime is returned when the requested start is not far
	// enough in the future.
	ErrInsufficientLeadTime = errors.New("create_appointment: insufficient lead time")

	// ErrClosedDay is returned when no enabled working day covers the
	// requested weekday.
	ErrClosedDay = errors.New("create_appointment: closed on this day")

	// ErrOutsideMargin is returned when the wash does not fit inside any
	// enabled margin of the day.
	ErrOutsideMargin = errors.New("create_appointment: outside working hours")

	// ErrSlotTaken is returned when the requested interval overlaps another
	// active appointment.
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrStoreTimeout is returned when a storage call exceeds its deadline.
	ErrStoreTimeout = errors.New("create_appointment: store timeout")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_appointment: internal error")
)

// ExceptionConflictError is returned when the requested interval intersects
// an enabled closure exception. It carries the closure's reason so callers
// can tell the customer why the business is closed.
type ExceptionConflictError struct {
	Reason string
}

// Error implements the error interface.
func (e *ExceptionConflictError) Error() string {
	return fmt.Sprintf("create_appointment: blocked by closure: %s", e.Reason)
}
