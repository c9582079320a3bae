package get_customer_appointments

import (
	"context"

	"github.com/ndelucca/lavadero-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByCustomer(ctx context.Context, customerID int64, status *string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
