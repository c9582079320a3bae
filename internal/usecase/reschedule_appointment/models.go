package reschedule_appointment

import (
	"time"

	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// Request moves an active appointment to a new civil date/time, updates its
// plate, or both. Date and StartTime travel together; Plate alone is a
// plate correction with no time checks.
type Request struct {
	AppointmentID int64
	Date          *time.Time
	StartTime     *types.TimeString
	Plate         *string
}

// Response is the updated appointment. FrozenPrice and FrozenDeposit are
// the original booking-time snapshot; rescheduling never recomputes them.
type Response struct {
	ID              int64
	ServiceConfigID int64
	CustomerID      int64
	ReservedAt      time.Time
	DurationMinutes int
	Plate           string
	FrozenPrice     float64
	FrozenDeposit   float64
	Status          string

	CreatedAt time.Time
	UpdatedAt time.Time
}
