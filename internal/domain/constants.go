package domain

// Slot grid constants
const (
	SlotMinutes  = 15
	SlotsPerHour = 60 / SlotMinutes
	DaysPerWeek  = 7
)

// DraftAppointmentID зарезервированный ID черновика записи, который форма редактирования
// подмешивает в список записей до подтверждения сервером
const DraftAppointmentID = "current-appointment"

// Default calendar values
const (
	DefaultOpenTime  = "08:00"
	DefaultCloseTime = "17:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
