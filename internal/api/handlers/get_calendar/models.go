package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Date        string   `json:"date"`
	Mode        string   `json:"mode"`
	OpenTime    string   `json:"openTime"`
	CloseTime   string   `json:"closeTime"`
	SlotMinutes int      `json:"slotMinutes"`
	Version     string   `json:"version"`
	FromCache   bool     `json:"fromCache"`
	Columns     []Column `json:"columns"`
}

// Column колонка календаря (ассистент, день)
type Column struct {
	ResourceID    string `json:"resourceId"`
	ResourceLabel string `json:"resourceLabel"`
	DayOffset     int    `json:"dayOffset"`
	Date          string `json:"date"`
	Cells         []Cell `json:"cells"`
}

// Cell ячейка слота
type Cell struct {
	Time        string       `json:"time"` // "HH:MM"
	StartTime   time.Time    `json:"startTime"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

// Appointment блок записи, начинающейся в ячейке
type Appointment struct {
	ID                   string    `json:"id"`
	ClientName           string    `json:"clientName,omitempty"`
	ServiceIDs           []string  `json:"serviceIds"`
	ServiceNames         []string  `json:"serviceNames"`
	TotalDurationMinutes int       `json:"totalDurationMinutes"`
	TotalPrice           int64     `json:"totalPrice"`
	Span                 float64   `json:"span"`
	StartTime            time.Time `json:"startTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	grid := resp.Grid
	result := &CalendarResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		Mode:        string(resp.Mode),
		OpenTime:    grid.Window.Start.Format(domain.TimeFormat),
		CloseTime:   grid.Window.End.Format(domain.TimeFormat),
		SlotMinutes: domain.SlotMinutes,
		Version:     resp.Version,
		FromCache:   resp.FromCache,
		Columns:     make([]Column, len(grid.Columns)),
	}

	for i, col := range grid.Columns {
		column := Column{
			ResourceID:    col.Resource.ID,
			ResourceLabel: col.Resource.Label,
			DayOffset:     col.DayOffset,
			Cells:         make([]Cell, len(col.Cells)),
		}
		if len(col.Cells) > 0 {
			column.Date = col.Cells[0].Slot.Time.Format(domain.DateFormat)
		}

		for j, cell := range col.Cells {
			column.Cells[j] = Cell{
				Time:      cell.Slot.Time.Format(domain.TimeFormat),
				StartTime: cell.Slot.Time,
			}
			if cell.IsBooked() {
				column.Cells[j].Appointment = fromDomainCell(cell)
			}
		}

		result.Columns[i] = column
	}

	return result
}

func fromDomainCell(cell domain.Cell) *Appointment {
	a := cell.Appointment
	ids := make([]string, len(a.Services))
	names := make([]string, len(a.Services))
	for i, s := range a.Services {
		ids[i] = s.ID
		names[i] = s.Name
	}

	return &Appointment{
		ID:                   a.ID,
		ClientName:           a.ClientName,
		ServiceIDs:           ids,
		ServiceNames:         names,
		TotalDurationMinutes: cell.Totals.TotalDurationMinutes,
		TotalPrice:           cell.Totals.TotalPrice,
		Span:                 cell.Span,
		StartTime:            a.StartTime,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, modeStr string, resourceIDs []string) (*getCalendar.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	mode, err := domain.ParseViewMode(modeStr)
	if err != nil {
		return nil, err
	}

	return &getCalendar.Request{
		Date:        date,
		Mode:        mode,
		ResourceIDs: resourceIDs,
	}, nil
}
