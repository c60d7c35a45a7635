package models

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// BusinessHours рабочие часы календаря
type BusinessHours struct {
	Open     types.TimeString `json:"open"`
	Close    types.TimeString `json:"close"`
	Timezone string           `json:"timezone"`
}

// ResourceResponse ассистент
type ResourceResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
}

// CatalogResponse ответ со справочниками календаря
type CatalogResponse struct {
	Resources   []ResourceResponse `json:"resources"`
	Services    []ServiceResponse  `json:"services"`
	Hours       BusinessHours      `json:"businessHours"`
	SlotMinutes int                `json:"slotMinutes"`
}

// FromDomainCatalog конвертирует domain модели в DTO
func FromDomainCatalog(resources []domain.Resource, services []domain.Service, hours BusinessHours) *CatalogResponse {
	resp := &CatalogResponse{
		Resources:   make([]ResourceResponse, len(resources)),
		Services:    make([]ServiceResponse, len(services)),
		Hours:       hours,
		SlotMinutes: domain.SlotMinutes,
	}

	for i, r := range resources {
		resp.Resources[i] = ResourceResponse{ID: r.ID, Label: r.Label}
	}

	for i, s := range services {
		resp.Services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}

	return resp
}
