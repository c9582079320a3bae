package get_available_slots

import "fmt"

// validateRequest validates the request data.
func validateRequest(req *Request) error {
	if req.ServiceConfigID <= 0 {
		return fmt.Errorf("%w: serviceConfigID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ExcludeAppointmentID != nil && *req.ExcludeAppointmentID <= 0 {
		return fmt.Errorf("%w: excludeAppointmentID must be positive", ErrInvalidInput)
	}

	return nil
}
