package create_margin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	"github.com/ndelucca/lavadero-booking/internal/service/schedule"
)

const (
	msgInvalidWeekday     = "invalid weekday, expected 0 (Sunday) through 6 (Saturday)"
	msgInvalidRequestBody = "invalid request body"
	msgDayNotFound        = "working day not found"
	msgInvalidRange       = "closing time must be after opening time"
)

// CreateMarginRequest HTTP request model
type CreateMarginRequest struct {
	OpensAt  string `json:"opensAt"`  // "09:00"
	ClosesAt string `json:"closesAt"` // "13:00"
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

// Handle POST /api/v1/schedule/days/{weekday}/margins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	weekdayNum, err := strconv.Atoi(vars["weekday"])
	if err != nil || weekdayNum < 0 || weekdayNum > 6 {
		h.logger.Warn("POST /schedule/days/{weekday}/margins - Invalid weekday: %s", vars["weekday"])
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}
	weekday := time.Weekday(weekdayNum)

	var req CreateMarginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/days/{weekday}/margins - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateMargin(r.Context(), weekday, req.OpensAt, req.ClosesAt, req.Enabled)
	if err != nil {
		var overlap *schedule.MarginOverlapError
		switch {
		case errors.As(err, &overlap):
			h.logger.Warn("POST /schedule/days/{weekday}/margins - Overlap: weekday=%s, conflicts with %s-%s",
				weekday, overlap.OpensAt, overlap.ClosesAt)
			handlers.RespondError(w, http.StatusConflict, overlap.Error())

		case errors.Is(err, schedule.ErrInvalidRange):
			h.logger.Warn("POST /schedule/days/{weekday}/margins - Invalid range: weekday=%s, %s-%s",
				weekday, req.OpensAt, req.ClosesAt)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, schedule.ErrWorkingDayNotFound):
			h.logger.Warn("POST /schedule/days/{weekday}/margins - Day not found: weekday=%s", weekday)
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/days/{weekday}/margins - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /schedule/days/{weekday}/margins - Failed: weekday=%s, error=%v", weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/days/{weekday}/margins - Margin created: margin_id=%d, weekday=%s",
		result.ID, weekday)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
