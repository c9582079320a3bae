package reschedule_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrNotActive is returned when the appointment is cancelled or
	// completed; terminal appointments cannot be moved.
	ErrNotActive = errors.New("reschedule_appointment: appointment is not active")

	// ErrInsufficientLeadTime is returned when the new start is not far
	// enough in the future.
	ErrInsufficientLeadTime = errors.New("reschedule_appointment: insufficient lead time")

	// ErrClosedDay is returned when no enabled working day covers the new weekday.
	ErrClosedDay = errors.New("reschedule_appointment: closed on this day")

	// ErrOutsideMargin is returned when the wash does not fit inside any
	// enabled margin of the new day.
	ErrOutsideMargin = errors.New("reschedule_appointment: outside working hours")

	// ErrSlotTaken is returned when the new interval overlaps another
	// active appointment.
	ErrSlotTaken = errors.New("reschedule_appointment: slot already taken")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrStoreTimeout is returned when a storage call exceeds its deadline.
	ErrStoreTimeout = errors.New("reschedule_appointment: store timeout")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("reschedule_appointment: internal error")
)

// ExceptionConflictError is returned when the new interval intersects an
// enabled closure exception, carrying the closure's reason.
type ExceptionConflictError struct {
	Reason string
}

// Error implements the error interface.
func (e *ExceptionConflictError) Error() string {
	return fmt.Sprintf("reschedule_appointment: blocked by closure: %s", e.Reason)
}
