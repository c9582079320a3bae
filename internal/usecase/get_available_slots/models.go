package get_available_slots

import (
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
)

// Request asks for the bookable slots of one civil date.
type Request struct {
	// Date is the civil date in the business timezone (clock part ignored).
	Date time.Time
	// ServiceConfigID selects the wash service whose duration shapes the slots.
	ServiceConfigID int64
	// ExcludeAppointmentID removes one appointment from the occupancy set,
	// used when regenerating slots while editing that appointment so it
	// does not block itself.
	ExcludeAppointmentID *int64
}

// Response is the slot list for the requested date. Every listed slot is
// bookable; blocked candidates are excluded, not flagged.
type Response struct {
	Date            time.Time
	ServiceConfigID int64
	// Closed is true when the weekday has no working day configured or no
	// enabled margins. It is a normal outcome, not an error.
	Closed bool
	Slots  []domain.Slot
}
