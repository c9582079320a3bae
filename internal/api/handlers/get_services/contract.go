package get_services

import (
	"context"

	"github.com/ndelucca/lavadero-booking/internal/domain"
)

type ServiceCatalog interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.ServiceConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
