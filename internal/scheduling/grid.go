package scheduling

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// BuildGrid строит сетку календаря: колонки (ассистент, день) со слотами
// и наложенными на них записями
//
// day: одна колонка на ассистента; week: семь колонок на ассистента, начиная с воскресенья.
// Колонки идут в порядке resources, внутри ассистента - по возрастанию дня.
func BuildGrid(
	window domain.TimeWindow,
	mode domain.ViewMode,
	resources []domain.Resource,
	appointments []domain.Appointment,
) (*domain.Grid, error) {
	days := mode.Days()

	// Слоты одинаковы для всех ассистентов, генерируем один раз на день
	slotsByDay := make([][]domain.Slot, days)
	for day := 0; day < days; day++ {
		slots, err := GenerateSlots(window, mode, day)
		if err != nil {
			return nil, err
		}
		slotsByDay[day] = slots
	}

	index := NewAppointmentIndex(appointments)

	columns := make([]domain.Column, 0, len(resources)*days)
	for _, resource := range resources {
		for day := 0; day < days; day++ {
			columns = append(columns, buildColumn(resource, day, slotsByDay[day], index))
		}
	}

	return &domain.Grid{
		Window:  window,
		Mode:    mode,
		Columns: columns,
	}, nil
}

func buildColumn(resource domain.Resource, day int, slots []domain.Slot, index *AppointmentIndex) domain.Column {
	cells := make([]domain.Cell, len(slots))
	for i, slot := range slots {
		cell := domain.Cell{Slot: slot}
		if appointment := index.Match(resource, slot); appointment != nil {
			cell.Appointment = appointment
			cell.Totals = Aggregate(appointment.Services)
			cell.Span = SlotSpan(cell.Totals.TotalDurationMinutes)
		}
		cells[i] = cell
	}

	return domain.Column{
		Resource:  resource,
		DayOffset: day,
		Cells:     cells,
	}
}

// CellCount общее количество ячеек сетки
func CellCount(grid *domain.Grid) int {
	count := 0
	for i := range grid.Columns {
		count += len(grid.Columns[i].Cells)
	}
	return count
}
