package update_margin

import (
	"context"

	"github.com/ndelucca/lavadero-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateMargin(ctx context.Context, id int64, opensAt, closesAt string, enabled bool) (*models.MarginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
