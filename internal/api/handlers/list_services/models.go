package list_services

import (
	"github.com/lucerocare/LRM-BookingService/internal/domain"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	BaseRateHour float64 `json:"baseRateHour"`
	DurationMin  int     `json:"durationMin"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует услуги каталога в HTTP response
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = ServiceResponse{
			ID:           svc.ID.String(),
			Title:        svc.Title,
			Description:  svc.Description,
			BaseRateHour: svc.BaseRateHour,
			DurationMin:  svc.DurationMin,
		}
	}
	return &ServiceListResponse{Services: result}
}
