package reschedule_appointment

import (
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	rescheduleAppointment "github.com/ndelucca/lavadero-booking/internal/usecase/reschedule_appointment"
	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model. Date and startTime
// travel together; plate may change on its own.
type RescheduleAppointmentRequest struct {
	Date      *string `json:"date,omitempty"`      // "2026-09-15"
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	Plate     *string `json:"plate,omitempty"`
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

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*rescheduleAppointment.Request, error) {
	req := &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		Plate:         r.Plate,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
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
