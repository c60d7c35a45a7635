package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// MatchSlot возвращает запись ассистента resource, начинающуюся в ту же минуту, что и slot
// Секунды и миллисекунды не учитываются. При нарушении инварианта (две записи
// ассистента в одну минуту) побеждает первая по порядку во входном списке.
// Записи с неизвестным ассистентом никогда не совпадают.
func MatchSlot(resource domain.Resource, slot domain.Slot, appointments []domain.Appointment) *domain.Appointment {
	slotMinute := slot.Minute()
	for i := range appointments {
		a := &appointments[i]
		if a.ResourceID != resource.ID {
			continue
		}
		if a.StartTime.Truncate(time.Minute).Equal(slotMinute) {
			return a
		}
	}
	return nil
}

type matchKey struct {
	resourceID string
	minute     int64
}

// AppointmentIndex индекс записей по (ассистент, минута начала)
// Дает ту же семантику, что и MatchSlot, за O(1) на поиск
type AppointmentIndex struct {
	byKey map[matchKey]*domain.Appointment
}

// NewAppointmentIndex строит индекс; при дубликатах сохраняется первая запись
func NewAppointmentIndex(appointments []domain.Appointment) *AppointmentIndex {
	idx := &AppointmentIndex{byKey: make(map[matchKey]*domain.Appointment, len(appointments))}
	for i := range appointments {
		a := &appointments[i]
		key := matchKey{resourceID: a.ResourceID, minute: minuteBucket(a.StartTime)}
		if _, exists := idx.byKey[key]; exists {
			continue
		}
		idx.byKey[key] = a
	}
	return idx
}

// Match ищет запись для пары (ассистент, слот)
func (idx *AppointmentIndex) Match(resource domain.Resource, slot domain.Slot) *domain.Appointment {
	return idx.byKey[matchKey{resourceID: resource.ID, minute: minuteBucket(slot.Time)}]
}

// Len количество проиндексированных записей
func (idx *AppointmentIndex) Len() int {
	return len(idx.byKey)
}

func minuteBucket(t time.Time) int64 {
	return t.Truncate(time.Minute).Unix() / 60
}
