package get_service

import "github.com/ndelucca/lavadero-booking/internal/domain"

// ServiceResponse is one wash service.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Deposit         float64 `json:"deposit"`
	Active          bool    `json:"active"`
}

// FromDomainService converts a domain service config into the HTTP model.
func FromDomainService(cfg *domain.ServiceConfig) *ServiceResponse {
	return &ServiceResponse{
		ID:              cfg.ID,
		Name:            cfg.Name,
		DurationMinutes: cfg.DurationMinutes,
		Price:           cfg.Price,
		Deposit:         cfg.Deposit,
		Active:          cfg.Active,
	}
}
