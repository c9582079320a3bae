package list_exceptions

import (
	"context"

	"github.com/ndelucca/lavadero-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	ListExceptions(ctx context.Context) (*models.ExceptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
