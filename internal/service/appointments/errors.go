package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidStatusTransition is returned when a status change is not
	// allowed by the appointment state machine. Cancelled and completed are
	// terminal; nothing transitions out of them.
	ErrInvalidStatusTransition = errors.New("appointments: invalid status transition")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("appointments: internal error")
)
