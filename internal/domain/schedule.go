package domain

import (
	"time"

	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// WorkingDay is the configured opening of one weekday. At most one
// WorkingDay exists per weekday value.
type WorkingDay struct {
	Weekday time.Weekday
	Enabled bool
	// Margins are the open/close ranges of the day, ordered by opening
	// time. Margins of the same day never overlap; touching endpoints are
	// allowed.
	Margins []Margin

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnabledMargins returns the margins that currently accept bookings.
func (d *WorkingDay) EnabledMargins() []Margin {
	result := make([]Margin, 0, len(d.Margins))
	for _, m := range d.Margins {
		if m.Enabled {
			result = append(result, m)
		}
	}
	return result
}

// IsOpen reports whether the day accepts bookings at all.
func (d *WorkingDay) IsOpen() bool {
	return d.Enabled && len(d.EnabledMargins()) > 0
}

// Margin is a contiguous open/close wall-clock range within a working day.
// ClosesAt is strictly later than OpensAt; margins never cross midnight.
type Margin struct {
	ID       int64
	Weekday  time.Weekday
	Enabled  bool
	OpensAt  types.TimeString
	ClosesAt types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RangesOverlap reports whether two minute ranges overlap using half-open
// interval semantics: touching endpoints do not overlap.
func RangesOverlap(aFrom, aTo, bFrom, bTo int) bool {
	return aFrom < bTo && bFrom < aTo
}

// Contains reports whether [startMinutes, endMinutes] fits inside the margin.
func (m *Margin) Contains(startMinutes, endMinutes int) (bool, error) {
	open, err := m.OpensAt.Minutes()
	if err != nil {
		return false, err
	}
	close, err := m.ClosesAt.Minutes()
	if err != nil {
		return false, err
	}
	return open <= startMinutes && endMinutes <= close, nil
}
