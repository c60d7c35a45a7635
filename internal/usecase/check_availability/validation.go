package check_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	for _, id := range req.CurrentServiceIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: current service id must not be empty", ErrInvalidInput)
		}
	}

	for _, id := range req.ProposedServiceIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: proposed service id must not be empty", ErrInvalidInput)
		}
	}

	if req.AppointmentID != nil && *req.AppointmentID == domain.DraftAppointmentID {
		return fmt.Errorf("%w: appointmentId %q is reserved", ErrInvalidInput, domain.DraftAppointmentID)
	}

	return nil
}

// resolveServices находит услуги по ID в каталоге, сохраняя порядок и повторы
func resolveServices(catalog map[string]domain.Service, ids []string) ([]domain.Service, error) {
	services := make([]domain.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := catalog[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
		}
		services = append(services, s)
	}
	return services, nil
}
