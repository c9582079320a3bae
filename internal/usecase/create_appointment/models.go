package create_appointment

import (
	"time"

	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// Request creates a new appointment at a civil date and time of day in the
// business timezone. The instant is composed through timezone-database
// rules; no fixed offset is involved.
type Request struct {
	ServiceConfigID int64
	CustomerID      int64
	Date            time.Time
	StartTime       types.TimeString
	Plate           string
}

// Response is the created appointment.
type Response struct {
	ID              int64
	ServiceConfigID int64
	CustomerID      int64
	ReservedAt      time.Time
	DurationMinutes int
	Plate           string
	// FrozenPrice and FrozenDeposit are the price-lock snapshot taken from
	// the service configuration at booking time.
	FrozenPrice   float64
	FrozenDeposit float64
	Status        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
