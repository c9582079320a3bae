package delete_working_day

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
	msgInvalidWeekday = "invalid weekday, expected 0 (Sunday) through 6 (Saturday)"
	msgNotFound       = "working day not found"
	msgHasMargins     = "working day still has margins, delete them first"
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

// Handle DELETE /api/v1/schedule/days/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	weekdayNum, err := strconv.Atoi(vars["weekday"])
	if err != nil || weekdayNum < 0 || weekdayNum > 6 {
		h.logger.Warn("DELETE /schedule/days/{weekday} - Invalid weekday: %s", vars["weekday"])
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}
	weekday := time.Weekday(weekdayNum)

	err = h.service.DeleteWorkingDay(r.Context(), weekday)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWorkingDayNotFound):
			h.logger.Warn("DELETE /schedule/days/{weekday} - Not found: weekday=%s", weekday)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrDayHasMargins):
			h.logger.Warn("DELETE /schedule/days/{weekday} - Day has margins: weekday=%s", weekday)
			handlers.RespondError(w, http.StatusConflict, msgHasMargins)

		default:
			h.logger.Error("DELETE /schedule/days/{weekday} - Failed: weekday=%s, error=%v", weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/days/{weekday} - Working day deleted: weekday=%s", weekday)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
