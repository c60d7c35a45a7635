package domain

import "time"

// Appointment represents a booked (or draft) appointment of a resource
type Appointment struct {
	ID         string
	ResourceID string
	StartTime  time.Time
	Services   []Service

	// Denormalized data for the calendar block
	ClientName string
}

// IsDraft returns true for the unsaved draft placeholder
func (a *Appointment) IsDraft() bool {
	return a.ID == DraftAppointmentID
}

// AppointmentsFilter фильтр для выборки записей календаря
type AppointmentsFilter struct {
	ResourceIDs []string  // Пустой список - все ассистенты
	From        time.Time // Начало периода (включительно)
	To          time.Time // Конец периода (не включительно)
}
