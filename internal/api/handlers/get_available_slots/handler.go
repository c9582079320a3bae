package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	getAvailableSlots "github.com/ndelucca/lavadero-booking/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "serviceConfigId is required"
	msgInvalidServiceID = "invalid serviceConfigId"
	msgMissingDate      = "date is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidExclude   = "invalid excludeAppointmentId"
	msgServiceNotFound  = "service not found"
	msgStoreTimeout     = "storage timed out, try again"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: serviceConfigId (required), date (required, YYYY-MM-DD),
// excludeAppointmentId (optional, used while rescheduling)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceIDStr := r.URL.Query().Get("serviceConfigId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /slots - Missing service config ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceConfigID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid service config ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var excludeAppointmentID *int64
	if excludeStr := r.URL.Query().Get("excludeAppointmentId"); excludeStr != "" {
		excludeID, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid exclude appointment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExclude)
			return
		}
		excludeAppointmentID = &excludeID
	}

	useCaseReq, err := ToUseCaseRequest(serviceConfigID, dateStr, excludeAppointmentID)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_config_id=%d", serviceConfigID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrStoreTimeout):
			h.logger.Error("GET /slots - Store timeout: service_config_id=%d, date=%s", serviceConfigID, dateStr)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgStoreTimeout)

		default:
			h.logger.Error("GET /slots - Failed to get slots: service_config_id=%d, date=%s, error=%v",
				serviceConfigID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Slots retrieved: service_config_id=%d, date=%s, slots_count=%d",
		serviceConfigID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
