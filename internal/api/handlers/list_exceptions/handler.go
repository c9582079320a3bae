package list_exceptions

import (
	"net/http"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListExceptions(r.Context())
	if err != nil {
		h.logger.Error("GET /exceptions - Failed to list exceptions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /exceptions - Retrieved %d exceptions", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
