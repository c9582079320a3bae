package delete_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	"github.com/ndelucca/lavadero-booking/internal/service/schedule"
)

const (
	msgInvalidExceptionID = "invalid exception ID"
	msgNotFound           = "exception not found"
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

// Handle DELETE /api/v1/exceptions/{exceptionId}
// Query params: hard (optional, "true" removes the row instead of disabling it)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /exceptions/{id} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	hard := r.URL.Query().Get("hard") == "true"

	err = h.service.DeleteException(r.Context(), exceptionID, hard)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrExceptionNotFound):
			h.logger.Warn("DELETE /exceptions/{id} - Not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /exceptions/{id} - Failed: exception_id=%d, error=%v", exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /exceptions/{id} - Exception deleted: exception_id=%d, hard=%t", exceptionID, hard)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
