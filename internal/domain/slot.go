package domain

import (
	"time"

	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// Slot is a bookable start time on a given civil date. Every slot returned
// to a caller is free: conflicting candidates are excluded during
// generation, not flagged.
type Slot struct {
	// StartTime is the civil wall-clock start in the business timezone.
	StartTime types.TimeString
	// StartInstant is the same moment as a UTC instant.
	StartInstant    time.Time
	DurationMinutes int
}
