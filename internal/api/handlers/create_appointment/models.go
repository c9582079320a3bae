package create_appointment

import (
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	createAppointment "github.com/ndelucca/lavadero-booking/internal/usecase/create_appointment"
	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceConfigID int64  `json:"serviceConfigId"`
	Date            string `json:"date"`      // "2026-09-15"
	StartTime       string `json:"startTime"` // "10:00"
	Plate           string `json:"plate"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ServiceConfigID int64   `json:"serviceConfigId"`
	CustomerID      int64   `json:"customerId"`
	ReservedAt      string  `json:"reservedAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Plate           string  `json:"plate"`
	FrozenPrice     float64 `json:"frozenPrice"`
	FrozenDeposit   float64 `json:"frozenDeposit"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the civil date and start time.
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceConfigID: r.ServiceConfigID,
		CustomerID:      customerID,
		Date:            date,
		StartTime:       startTime,
		Plate:           r.Plate,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ServiceConfigID: resp.ServiceConfigID,
		CustomerID:      resp.CustomerID,
		ReservedAt:      resp.ReservedAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Plate:           resp.Plate,
		FrozenPrice:     resp.FrozenPrice,
		FrozenDeposit:   resp.FrozenDeposit,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
