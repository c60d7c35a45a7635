package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// 2025-10-12 - воскресенье
var sunday = time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func window(day time.Time, fromHour, toHour int) domain.TimeWindow {
	return domain.TimeWindow{Start: at(day, fromHour, 0), End: at(day, toHour, 0)}
}

func svc(id string, duration int, price int64) domain.Service {
	return domain.Service{ID: id, Name: id, DurationMinutes: duration, Price: price}
}
