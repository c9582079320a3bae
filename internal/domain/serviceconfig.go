package domain

import "time"

// ServiceConfig is a bookable wash service. It belongs to the catalog
// subsystem and is read-only here: the booking core only consumes its
// duration and snapshots its price and deposit.
type ServiceConfig struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Deposit         float64
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
