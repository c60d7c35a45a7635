package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
)

// Request модели

// ListByResourceRequest запрос записей ассистента на дату
type ListByResourceRequest struct {
	ResourceID string    `json:"resourceId"`
	Date       time.Time `json:"date"`
}

// ToDomainFilter конвертирует request в domain фильтр на календарные сутки Date
// в часовом поясе loc (время в Date не учитывается)
func (r *ListByResourceRequest) ToDomainFilter(loc *time.Location) domain.AppointmentsFilter {
	if loc == nil {
		loc = time.UTC
	}
	from := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, loc)
	return domain.AppointmentsFilter{
		ResourceIDs: []string{r.ResourceID},
		From:        from,
		To:          domain.OffsetByDays(from, 1),
	}
}

// Response модели

// ServiceResponse услуга записи
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                   string            `json:"id"`
	ResourceID           string            `json:"resourceId"`
	StartTime            time.Time         `json:"startTime"`
	EndTime              time.Time         `json:"endTime"`
	ClientName           string            `json:"clientName,omitempty"`
	Services             []ServiceResponse `json:"services"`
	TotalDurationMinutes int               `json:"totalDurationMinutes"`
	TotalPrice           int64             `json:"totalPrice"`
	Span                 float64           `json:"span"` // Высота блока в слотах
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainService конвертирует domain услугу в DTO
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	totals := scheduling.Aggregate(a.Services)
	services := make([]ServiceResponse, len(a.Services))
	for i, s := range a.Services {
		services[i] = FromDomainService(s)
	}

	return &AppointmentResponse{
		ID:                   a.ID,
		ResourceID:           a.ResourceID,
		StartTime:            a.StartTime,
		EndTime:              scheduling.EndTime(a),
		ClientName:           a.ClientName,
		Services:             services,
		TotalDurationMinutes: totals.TotalDurationMinutes,
		TotalPrice:           totals.TotalPrice,
		Span:                 scheduling.SlotSpan(totals.TotalDurationMinutes),
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i := range appointments {
		resp.Appointments[i] = *FromDomainAppointment(&appointments[i])
	}

	return resp
}
