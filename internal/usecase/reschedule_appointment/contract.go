package reschedule_appointment

import (
	"context"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
)

// AppointmentRepository is the slice of the appointment store this use case needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetActiveInRange(ctx context.Context, from, to time.Time, excludeID *int64) ([]*domain.Appointment, error)
	UpdateTime(ctx context.Context, id int64, reservedAt time.Time, plate *string) (*domain.Appointment, error)
}

// ScheduleRepository resolves the configured working day for a weekday.
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday time.Weekday, onlyEnabledMargins bool) (*domain.WorkingDay, error)
}

// ExceptionRepository lists closures intersecting an instant range.
type ExceptionRepository interface {
	ListOverlapping(ctx context.Context, from, to time.Time, onlyEnabled bool) ([]*domain.Exception, error)
}

// TransactionManager wraps the validate-then-write sequence.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
