package create_exception

import (
	"errors"
	"net/http"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
	"github.com/ndelucca/lavadero-booking/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInstant     = "invalid timestamp, expected RFC 3339"
)

// CreateExceptionRequest HTTP request model. StartsAt and EndsAt are
// RFC 3339 instants; the closure window is timezone independent.
type CreateExceptionRequest struct {
	Reason   string `json:"reason"`
	StartsAt string `json:"startsAt"` // "2026-12-25T00:00:00Z"
	EndsAt   string `json:"endsAt"`
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

// Handle POST /api/v1/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		h.logger.Warn("POST /exceptions - Invalid startsAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstant)
		return
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		h.logger.Warn("POST /exceptions - Invalid endsAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstant)
		return
	}

	result, err := h.service.CreateException(r.Context(), req.Reason, startsAt, endsAt)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /exceptions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /exceptions - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /exceptions - Exception created: exception_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
