package domain

import (
	"strings"
	"time"
)

// AppointmentStatus is the closed set of appointment states.
type AppointmentStatus string

const (
	StatusActive    AppointmentStatus = "active"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ParseAppointmentStatus validates a status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusActive, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), true
	}
	return "", false
}

// Appointment represents a wash booking on the single shared calendar.
type Appointment struct {
	ID              int64
	ServiceConfigID int64
	CustomerID      int64
	// ReservedAt is the UTC instant the wash starts.
	ReservedAt time.Time
	// DurationMinutes is denormalized from the service configuration at
	// booking time so later configuration edits never move the slot.
	DurationMinutes int
	// Plate is the vehicle license plate, normalized uppercase.
	Plate string
	// FrozenPrice and FrozenDeposit are copied from the service
	// configuration when the appointment is created and never recomputed.
	FrozenPrice   float64
	FrozenDeposit float64
	Status        AppointmentStatus

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EndsAt returns the UTC instant the wash ends.
func (a *Appointment) EndsAt() time.Time {
	return a.ReservedAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusActive
}

// CanTransitionTo reports whether the status change is allowed.
// Active is the only non-terminal state: active -> cancelled and
// active -> completed are the only legal transitions.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status != StatusActive {
		return false
	}
	return next == StatusCancelled || next == StatusCompleted
}

// NormalizePlate normalizes a license plate for storage and comparison.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
