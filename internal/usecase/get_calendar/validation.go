package get_calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Mode != domain.ViewModeDay && req.Mode != domain.ViewModeWeek {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	for _, id := range req.ResourceIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: resourceId must not be empty", ErrInvalidInput)
		}
	}

	return nil
}

// uniqueIDs убирает дубликаты, сохраняя порядок
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
