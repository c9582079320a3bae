package create_appointment

import (
	"errors"
	"net/http"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	"github.com/ndelucca/lavadero-booking/internal/api/middleware"
	createAppointment "github.com/ndelucca/lavadero-booking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgMissingUser        = "missing user identity"
	msgServiceNotFound    = "service not found"
	msgSlotTaken          = "the requested slot is already taken"
	msgClosedDay          = "the business is closed on this day"
	msgOutsideMargin      = "the requested time is outside working hours"
	msgInsufficientLead   = "the requested time is too soon"
	msgStoreTimeout       = "storage timed out, try again"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user identity")
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var excConflict *createAppointment.ExceptionConflictError
		switch {
		case errors.As(err, &excConflict):
			h.logger.Warn("POST /appointments - Closure conflict: customer_id=%d, reason=%s",
				customerID, excConflict.Reason)
			handlers.RespondError(w, http.StatusConflict, excConflict.Reason)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: customer_id=%d, date=%s, time=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_config_id=%d", req.ServiceConfigID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: customer_id=%d, date=%s", customerID, req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createAppointment.ErrOutsideMargin):
			h.logger.Warn("POST /appointments - Outside working hours: customer_id=%d, date=%s, time=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideMargin)

		case errors.Is(err, createAppointment.ErrInsufficientLeadTime):
			h.logger.Warn("POST /appointments - Insufficient lead time: customer_id=%d, date=%s, time=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInsufficientLead)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrStoreTimeout):
			h.logger.Error("POST /appointments - Store timeout: customer_id=%d", customerID)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d",
		result.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
