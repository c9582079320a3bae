package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	rescheduleAppointment "github.com/ndelucca/lavadero-booking/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgNotFound             = "appointment not found"
	msgNotActive            = "appointment is not active"
	msgSlotTaken            = "the requested slot is already taken"
	msgClosedDay            = "the business is closed on this day"
	msgOutsideMargin        = "the requested time is outside working hours"
	msgInsufficientLead     = "the requested time is too soon"
	msgStoreTimeout         = "storage timed out, try again"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var excConflict *rescheduleAppointment.ExceptionConflictError
		switch {
		case errors.As(err, &excConflict):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Closure conflict: appointment_id=%d, reason=%s",
				appointmentID, excConflict.Reason)
			handlers.RespondError(w, http.StatusConflict, excConflict.Reason)

		case errors.Is(err, rescheduleAppointment.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Slot taken: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrNotActive):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Not active: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotActive)

		case errors.Is(err, rescheduleAppointment.ErrClosedDay):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Closed day: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, rescheduleAppointment.ErrOutsideMargin):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Outside working hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideMargin)

		case errors.Is(err, rescheduleAppointment.ErrInsufficientLeadTime):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Insufficient lead time: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInsufficientLead)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, rescheduleAppointment.ErrStoreTimeout):
			h.logger.Error("PATCH /appointments/{id}/reschedule - Store timeout: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		default:
			h.logger.Error("PATCH /appointments/{id}/reschedule - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id}/reschedule - Appointment rescheduled: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
