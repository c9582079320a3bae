package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the requested service does not exist.
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrStoreTimeout is returned when a storage call exceeds its deadline.
	ErrStoreTimeout = errors.New("get_available_slots: store timeout")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
