package check_availability

import (
	"time"

	checkAvailability "github.com/m04kA/SMC-CalendarService/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	ResourceID         string   `json:"resourceId"`
	StartTime          string   `json:"startTime"` // RFC 3339
	CurrentServiceIDs  []string `json:"currentServiceIds"`
	ProposedServiceIDs []string `json:"proposedServiceIds,omitempty"`
	AppointmentID      *string  `json:"appointmentId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		ResourceID:         r.ResourceID,
		StartTime:          start,
		CurrentServiceIDs:  r.CurrentServiceIDs,
		ProposedServiceIDs: r.ProposedServiceIDs,
		AppointmentID:      r.AppointmentID,
	}, nil
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	ResourceID                  string                `json:"resourceId"`
	StartTime                   time.Time             `json:"startTime"`
	CurrentTotalDurationMinutes int                   `json:"currentTotalDurationMinutes"`
	CurrentTotalPrice           int64                 `json:"currentTotalPrice"`
	CurrentEndTime              time.Time             `json:"currentEndTime"`
	NextAppointmentStart        *time.Time            `json:"nextAppointmentStart,omitempty"`
	Services                    []ServiceAvailability `json:"services"`
}

// ServiceAvailability доступность услуги
type ServiceAvailability struct {
	ServiceID                     string    `json:"serviceId"`
	Name                          string    `json:"name"`
	DurationMinutes               int       `json:"durationMinutes"`
	Price                         int64     `json:"price"`
	Addable                       bool      `json:"addable"`
	ProjectedTotalDurationMinutes int       `json:"projectedTotalDurationMinutes"`
	ProjectedTotalPrice           int64     `json:"projectedTotalPrice"`
	ProjectedEndTime              time.Time `json:"projectedEndTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	services := make([]ServiceAvailability, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = ServiceAvailability{
			ServiceID:                     s.Service.ID,
			Name:                          s.Service.Name,
			DurationMinutes:               s.Service.DurationMinutes,
			Price:                         s.Service.Price,
			Addable:                       s.Addable,
			ProjectedTotalDurationMinutes: s.Projected.TotalDurationMinutes,
			ProjectedTotalPrice:           s.Projected.TotalPrice,
			ProjectedEndTime:              s.ProjectedEnd,
		}
	}

	return &CheckAvailabilityResponse{
		ResourceID:                  resp.ResourceID,
		StartTime:                   resp.StartTime,
		CurrentTotalDurationMinutes: resp.Current.TotalDurationMinutes,
		CurrentTotalPrice:           resp.Current.TotalPrice,
		CurrentEndTime:              resp.CurrentEnd,
		NextAppointmentStart:        resp.NextAppointmentStart,
		Services:                    services,
	}
}
