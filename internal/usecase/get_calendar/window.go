package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// buildWindow строит окно рабочих часов на дату date в часовом поясе календаря
func buildWindow(date time.Time, hours BusinessHours) (domain.TimeWindow, error) {
	loc := hours.Location
	if loc == nil {
		loc = time.UTC
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	start, err := hours.Open.OnDate(day)
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("%w: open time: %v", ErrInvalidWindow, err)
	}
	end, err := hours.Close.OnDate(day)
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("%w: close time: %v", ErrInvalidWindow, err)
	}

	window := domain.TimeWindow{Start: start, End: end}
	if _, ok := window.HoursOpen(); !ok {
		return domain.TimeWindow{}, fmt.Errorf("%w: %s-%s is not a whole number of hours",
			ErrInvalidWindow, hours.Open, hours.Close)
	}

	return window, nil
}

// appointmentsPeriod период выборки записей для режима отображения:
// сутки даты окна для day, неделя с воскресенья для week
func appointmentsPeriod(window domain.TimeWindow, mode domain.ViewMode) (from, to time.Time) {
	if mode == domain.ViewModeWeek {
		from = domain.StartOfDay(domain.StartOfWeek(window.Start))
		return from, domain.OffsetByDays(from, domain.DaysPerWeek)
	}
	from = domain.StartOfDay(window.Start)
	return from, domain.OffsetByDays(from, 1)
}
