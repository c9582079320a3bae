package update_margin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	"github.com/ndelucca/lavadero-booking/internal/service/schedule"
)

const (
	msgInvalidMarginID    = "invalid margin ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "margin not found"
	msgInvalidRange       = "closing time must be after opening time"
)

// UpdateMarginRequest HTTP request model
type UpdateMarginRequest struct {
	OpensAt  string `json:"opensAt"`
	ClosesAt string `json:"closesAt"`
	Enabled  bool   `json:"enabled"`
}

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

// Handle PUT /api/v1/schedule/margins/{marginId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	marginID, err := strconv.ParseInt(vars["marginId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedule/margins/{id} - Invalid margin ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMarginID)
		return
	}

	var req UpdateMarginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/margins/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateMargin(r.Context(), marginID, req.OpensAt, req.ClosesAt, req.Enabled)
	if err != nil {
		var overlap *schedule.MarginOverlapError
		switch {
		case errors.As(err, &overlap):
			h.logger.Warn("PUT /schedule/margins/{id} - Overlap: margin_id=%d, conflicts with %s-%s",
				marginID, overlap.OpensAt, overlap.ClosesAt)
			handlers.RespondError(w, http.StatusConflict, overlap.Error())

		case errors.Is(err, schedule.ErrInvalidRange):
			h.logger.Warn("PUT /schedule/margins/{id} - Invalid range: margin_id=%d, %s-%s",
				marginID, req.OpensAt, req.ClosesAt)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, schedule.ErrMarginNotFound):
			h.logger.Warn("PUT /schedule/margins/{id} - Not found: margin_id=%d", marginID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/margins/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /schedule/margins/{id} - Failed: margin_id=%d, error=%v", marginID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/margins/{id} - Margin updated: margin_id=%d", marginID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
