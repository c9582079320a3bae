package models

import (
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
)

// AppointmentResponse is the service-level view of an appointment.
type AppointmentResponse struct {
	ID              int64      `json:"id"`
	ServiceConfigID int64      `json:"serviceConfigId"`
	CustomerID      int64      `json:"customerId"`
	ReservedAt      time.Time  `json:"reservedAt"`
	DurationMinutes int        `json:"durationMinutes"`
	Plate           string     `json:"plate"`
	FrozenPrice     float64    `json:"frozenPrice"`
	FrozenDeposit   float64    `json:"frozenDeposit"`
	Status          string     `json:"status"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment.
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		ServiceConfigID: appt.ServiceConfigID,
		CustomerID:      appt.CustomerID,
		ReservedAt:      appt.ReservedAt,
		DurationMinutes: appt.DurationMinutes,
		Plate:           appt.Plate,
		FrozenPrice:     appt.FrozenPrice,
		FrozenDeposit:   appt.FrozenDeposit,
		Status:          string(appt.Status),
		CancelledAt:     appt.CancelledAt,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a list of domain appointments.
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
