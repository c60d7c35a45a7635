package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Candidate запись, которую пользователь сейчас собирает или редактирует
type Candidate struct {
	ResourceID      string
	StartTime       time.Time
	CurrentServices []domain.Service
}

// IsServiceAddable проверяет, можно ли добавить услугу proposed к кандидату,
// не заходя на следующую запись того же ассистента
//
// Учитываются только записи того же ассистента, начинающиеся строго позже кандидата.
// Редактируемая запись (excludeAppointmentID) и черновик domain.DraftAppointmentID пропускаются.
// Запись встык (конец == начало следующей) конфликтом не считается.
//
// При редактировании вызывающий обязан передать ID записи: иначе сохраненная версия
// той же записи (например, после переноса начала раньше) даст ложное "недоступно".
func IsServiceAddable(
	candidate Candidate,
	proposed domain.Service,
	resourceAppointments []domain.Appointment,
	excludeAppointmentID string,
) bool {
	current := Aggregate(candidate.CurrentServices)
	prospectiveEnd := candidate.StartTime.Add(minutes(current.TotalDurationMinutes + proposed.DurationMinutes))

	for i := range resourceAppointments {
		a := &resourceAppointments[i]

		if a.ResourceID != candidate.ResourceID {
			continue
		}
		if !a.StartTime.After(candidate.StartTime) {
			continue
		}
		if excludeAppointmentID != "" && a.ID == excludeAppointmentID {
			continue
		}
		if a.IsDraft() {
			continue
		}

		// Следующая запись начинается раньше, чем закончится кандидат
		if a.StartTime.Before(prospectiveEnd) {
			return false
		}
	}

	return true
}

// NextAppointment возвращает ближайшую запись ассистента, начинающуюся строго позже кандидата
// (с теми же исключениями, что и IsServiceAddable), или nil
func NextAppointment(
	candidate Candidate,
	resourceAppointments []domain.Appointment,
	excludeAppointmentID string,
) *domain.Appointment {
	var next *domain.Appointment
	for i := range resourceAppointments {
		a := &resourceAppointments[i]
		if a.ResourceID != candidate.ResourceID || !a.StartTime.After(candidate.StartTime) {
			continue
		}
		if (excludeAppointmentID != "" && a.ID == excludeAppointmentID) || a.IsDraft() {
			continue
		}
		if next == nil || a.StartTime.Before(next.StartTime) {
			next = a
		}
	}
	return next
}
