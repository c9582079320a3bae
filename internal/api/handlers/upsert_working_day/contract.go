package upsert_working_day

import (
	"context"
	"time"
)

type ScheduleService interface {
	UpsertWorkingDay(ctx context.Context, weekday time.Weekday, enabled bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
