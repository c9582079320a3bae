package schedule

import (
	"context"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
)

// ScheduleRepository persists working days and margins.
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday time.Weekday, onlyEnabledMargins bool) (*domain.WorkingDay, error)
	ListDays(ctx context.Context) ([]*domain.WorkingDay, error)
	CreateDay(ctx context.Context, weekday time.Weekday, enabled bool) error
	SetDayEnabled(ctx context.Context, weekday time.Weekday, enabled bool) error
	DeleteDay(ctx context.Context, weekday time.Weekday) error
	ListMargins(ctx context.Context, weekday time.Weekday, onlyEnabled bool) ([]domain.Margin, error)
	GetMarginByID(ctx context.Context, id int64) (*domain.Margin, error)
	CreateMargin(ctx context.Context, margin *domain.Margin) (*domain.Margin, error)
	UpdateMargin(ctx context.Context, margin *domain.Margin) (*domain.Margin, error)
	DeleteMargin(ctx context.Context, id int64) error
}

// ExceptionRepository persists closure exceptions.
type ExceptionRepository interface {
	Create(ctx context.Context, exc *domain.Exception) (*domain.Exception, error)
	List(ctx context.Context) ([]*domain.Exception, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
