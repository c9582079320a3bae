package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"active", "cancelled", "completed"} {
		status, ok := ParseAppointmentStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "Active", "done", "pending"} {
		_, ok := ParseAppointmentStatus(invalid)
		assert.False(t, ok, "status %q must be rejected", invalid)
	}
}

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{name: "active to cancelled", from: StatusActive, to: StatusCancelled, want: true},
		{name: "active to completed", from: StatusActive, to: StatusCompleted, want: true},
		{name: "active to active", from: StatusActive, to: StatusActive, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusActive, want: false},
		{name: "cancelled to completed", from: StatusCancelled, to: StatusCompleted, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := Appointment{Status: tt.from}
			assert.Equal(t, tt.want, appt.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentEndsAt(t *testing.T) {
	appt := Appointment{
		ReservedAt:      time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	}
	assert.Equal(t, time.Date(2026, 9, 15, 13, 45, 0, 0, time.UTC), appt.EndsAt())
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "AB123CD", NormalizePlate("ab123cd"))
	assert.Equal(t, "AB123CD", NormalizePlate("  Ab123Cd  "))
	assert.Equal(t, "", NormalizePlate("   "))
}

func TestExceptionBlocks(t *testing.T) {
	exc := Exception{
		StartsAt: time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC),
		Enabled:  true,
	}

	inside := time.Date(2026, 12, 25, 10, 0, 0, 0, time.UTC)
	assert.True(t, exc.Blocks(inside, inside.Add(time.Hour)))

	// Touching the closure boundary is not a collision.
	assert.False(t, exc.Blocks(exc.EndsAt, exc.EndsAt.Add(time.Hour)))
	assert.False(t, exc.Blocks(exc.StartsAt.Add(-time.Hour), exc.StartsAt))

	before := exc.StartsAt.Add(-2 * time.Hour)
	assert.False(t, exc.Blocks(before, before.Add(time.Hour)))
}
