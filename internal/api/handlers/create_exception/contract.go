package create_exception

import (
	"context"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateException(ctx context.Context, reason string, startsAt, endsAt time.Time) (*models.ExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
