package get_services

import (
	"net/http"

	"github.com/ndelucca/lavadero-booking/internal/api/handlers"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Only active services are offered to customers.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	configs, err := h.catalog.List(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromDomainServices(configs)

	h.logger.Info("GET /services - Retrieved %d services", response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
