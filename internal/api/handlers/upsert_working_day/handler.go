package upsert_working_day

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
)

// UpsertWorkingDayRequest HTTP request model
type UpsertWorkingDayRequest struct {
	Enabled bool `json:"enabled"`
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

// Handle PUT /api/v1/schedule/days/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	weekdayNum, err := strconv.Atoi(vars["weekday"])
	if err != nil || weekdayNum < 0 || weekdayNum > 6 {
		h.logger.Warn("PUT /schedule/days/{weekday} - Invalid weekday: %s", vars["weekday"])
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}
	weekday := time.Weekday(weekdayNum)

	var req UpsertWorkingDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/days/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpsertWorkingDay(r.Context(), weekday, req.Enabled)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/days/{weekday} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /schedule/days/{weekday} - Failed: weekday=%s, error=%v", weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/days/{weekday} - Working day saved: weekday=%s, enabled=%t",
		weekday, req.Enabled)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
