package domain

import "fmt"

// ViewMode calendar view mode
type ViewMode string

const (
	ViewModeDay  ViewMode = "day"
	ViewModeWeek ViewMode = "week"
)

// ParseViewMode converts a raw string to ViewMode, empty string means day view
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewModeDay:
		return ViewModeDay, nil
	case ViewModeWeek:
		return ViewModeWeek, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Days returns the number of day columns per resource
func (m ViewMode) Days() int {
	if m == ViewModeWeek {
		return DaysPerWeek
	}
	return 1
}
