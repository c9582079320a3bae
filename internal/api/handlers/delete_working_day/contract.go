package delete_working_day

import (
	"context"
	"time"
)

type ScheduleService interface {
	DeleteWorkingDay(ctx context.Context, weekday time.Weekday) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
