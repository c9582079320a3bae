package get_service

import (
	"context"

	"github.com/ndelucca/lavadero-booking/internal/domain"
)

type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
