package domain

import "time"

// Exception is an absolute-time closure overriding normal working hours:
// a holiday, maintenance block or one-off shutdown. It is weekday-agnostic
// and may span several days.
type Exception struct {
	ID      int64
	Reason  string
	// StartsAt and EndsAt are UTC instants, not civil times.
	StartsAt time.Time
	EndsAt   time.Time
	// Enabled false soft-deletes the exception without losing history.
	Enabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks reports whether the [from, to) interval collides with the
// exception, using half-open semantics on the exception's span.
func (e *Exception) Blocks(from, to time.Time) bool {
	return from.Before(e.EndsAt) && to.After(e.StartsAt)
}
