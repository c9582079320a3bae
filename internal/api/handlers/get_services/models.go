package get_services

import "github.com/ndelucca/lavadero-booking/internal/domain"

// ServiceResponse is one wash service offered to customers.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Deposit         float64 `json:"deposit"`
}

// ServiceListResponse is the service catalog.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainServices converts domain service configs into the HTTP model.
func FromDomainServices(configs []*domain.ServiceConfig) *ServiceListResponse {
	services := make([]ServiceResponse, len(configs))
	for i, cfg := range configs {
		services[i] = ServiceResponse{
			ID:              cfg.ID,
			Name:            cfg.Name,
			DurationMinutes: cfg.DurationMinutes,
			Price:           cfg.Price,
			Deposit:         cfg.Deposit,
		}
	}
	return &ServiceListResponse{
		Services: services,
		Total:    len(services),
	}
}
