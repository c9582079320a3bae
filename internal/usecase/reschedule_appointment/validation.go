package reschedule_appointment

import (
	"fmt"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	"github.com/ndelucca/lavadero-booking/pkg/timeutil"
)

// validateRequest validates the request data.
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.Date == nil && req.StartTime == nil && req.Plate == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	// A new time needs both halves of the civil timestamp.
	if (req.Date == nil) != (req.StartTime == nil) {
		return fmt.Errorf("%w: date and startTime must be provided together", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Plate != nil && domain.NormalizePlate(*req.Plate) == "" {
		return fmt.Errorf("%w: plate cannot be empty", ErrInvalidInput)
	}

	return nil
}

// validateLeadTime requires the start to be strictly after now + lead.
func validateLeadTime(start, now time.Time, minLeadTime time.Duration) error {
	if !start.After(now.Add(minLeadTime)) {
		return fmt.Errorf("%w: must book at least %d minutes in advance",
			ErrInsufficientLeadTime, int(minLeadTime.Minutes()))
	}
	return nil
}

// validateWithinMargin requires some enabled margin of the day to contain
// the whole [start, end] interval on the wall clock of loc.
func validateWithinMargin(day *domain.WorkingDay, start, end time.Time, loc *time.Location) error {
	startMinutes := timeutil.CivilMinutes(start, loc)
	endMinutes := timeutil.CivilMinutes(end, loc)

	for _, margin := range day.EnabledMargins() {
		ok, err := margin.Contains(startMinutes, endMinutes)
		if err != nil {
			return fmt.Errorf("%w: margin %d has malformed range: %v", ErrInternal, margin.ID, err)
		}
		if ok {
			return nil
		}
	}

	return fmt.Errorf("%w: %s-%s does not fit any open range",
		ErrOutsideMargin,
		timeutil.CivilTime(start, loc),
		timeutil.CivilTime(end, loc))
}

// findOverlapping returns the first active appointment whose interval
// overlaps [start, end) with strict inequalities, or nil.
func findOverlapping(start, end time.Time, appointments []*domain.Appointment) *domain.Appointment {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.ReservedAt.Before(end) && appt.EndsAt().After(start) {
			return appt
		}
	}
	return nil
}
