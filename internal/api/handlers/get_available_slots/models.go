package get_available_slots

import (
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	getAvailableSlots "github.com/ndelucca/lavadero-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	ServiceConfigID int64           `json:"serviceConfigId"`
	Closed          bool            `json:"closed"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot is one bookable start time.
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	StartInstant    string `json:"startInstant"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			StartInstant:    slot.StartInstant.Format(time.RFC3339),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceConfigID: resp.ServiceConfigID,
		Closed:          resp.Closed,
		Slots:           slots,
	}
}

// ToUseCaseRequest builds the use case request from query parameters.
func ToUseCaseRequest(serviceConfigID int64, dateStr string, excludeAppointmentID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:                 date,
		ServiceConfigID:      serviceConfigID,
		ExcludeAppointmentID: excludeAppointmentID,
	}, nil
}
