package delete_margin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	"github.com/ndelucca/lavadero-booking/internal/service/schedule"
)

const (
	msgInvalidMarginID = "invalid margin ID"
	msgNotFound        = "margin not found"
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

// Handle DELETE /api/v1/schedule/margins/{marginId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	marginID, err := strconv.ParseInt(vars["marginId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/margins/{id} - Invalid margin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMarginID)
		return
	}

	err = h.service.DeleteMargin(r.Context(), marginID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMarginNotFound):
			h.logger.Warn("DELETE /schedule/margins/{id} - Not found: margin_id=%d", marginID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /schedule/margins/{id} - Failed: margin_id=%d, error=%v", marginID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/margins/{id} - Margin deleted: margin_id=%d", marginID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
