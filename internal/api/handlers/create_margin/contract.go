package create_margin

import (
	"context"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateMargin(ctx context.Context, weekday time.Weekday, opensAt, closesAt string, enabled bool) (*models.MarginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
