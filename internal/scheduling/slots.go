package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const slotStep = domain.SlotMinutes * time.Minute

// GenerateSlots генерирует слоты с шагом 15 минут для окна window
//
// Режим day: hoursOpen*4 слотов начиная с window.Start, dayOffset игнорируется.
// Режим week: колонка dayOffset (0..6) недели, привязанной к воскресенью недели window.Start,
// время суток берется из window.Start.
//
// Функция чистая: одинаковые аргументы дают одинаковый результат, можно мемоизировать.
func GenerateSlots(window domain.TimeWindow, mode domain.ViewMode, dayOffset int) ([]domain.Slot, error) {
	hoursOpen, ok := window.HoursOpen()
	if !ok {
		return nil, fmt.Errorf("%w: start=%s end=%s must span a positive whole number of hours",
			ErrInvalidWindow, window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
	}

	var first time.Time
	switch mode {
	case domain.ViewModeDay:
		first = window.Start
	case domain.ViewModeWeek:
		if dayOffset < 0 || dayOffset >= domain.DaysPerWeek {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDayOffset, dayOffset)
		}
		first = domain.OffsetByDays(domain.StartOfWeek(window.Start), dayOffset)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidViewMode, mode)
	}

	count := hoursOpen * domain.SlotsPerHour
	slots := make([]domain.Slot, count)
	for i := 0; i < count; i++ {
		slots[i] = domain.Slot{Time: first.Add(time.Duration(i) * slotStep)}
	}

	return slots, nil
}
