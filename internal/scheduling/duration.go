package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Aggregate суммирует длительность и цену услуг
// Одна и та же функция используется и для размера блока записи в календаре,
// и для расчета предполагаемого конца черновика
func Aggregate(services []domain.Service) domain.Totals {
	var totals domain.Totals
	for _, s := range services {
		totals.TotalDurationMinutes += s.DurationMinutes
		totals.TotalPrice += s.Price
	}
	return totals
}

// SlotSpan высота блока записи в слотах (может быть дробной)
func SlotSpan(totalDurationMinutes int) float64 {
	return float64(totalDurationMinutes) / domain.SlotMinutes
}

// EndTime время окончания записи: начало + суммарная длительность услуг
func EndTime(appointment *domain.Appointment) time.Time {
	return appointment.StartTime.Add(minutes(Aggregate(appointment.Services).TotalDurationMinutes))
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
