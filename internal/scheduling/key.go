package scheduling

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// GridKey стабильный ключ мемоизации BuildGrid по значениям аргументов
// Одинаковые входные данные (включая порядок) дают одинаковый ключ
func GridKey(
	window domain.TimeWindow,
	mode domain.ViewMode,
	resources []domain.Resource,
	appointments []domain.Appointment,
) string {
	d := xxhash.New()
	w := keyWriter{d: d}

	w.writeString("window")
	w.writeString(window.Start.Location().String())
	w.writeInt(window.Start.UnixNano())
	w.writeInt(window.End.UnixNano())
	w.writeString(string(mode))

	w.writeString("resources")
	w.writeInt(int64(len(resources)))
	for _, r := range resources {
		w.writeString(r.ID)
		w.writeString(r.Label)
	}

	w.writeString("appointments")
	w.writeInt(int64(len(appointments)))
	for i := range appointments {
		a := &appointments[i]
		w.writeString(a.ID)
		w.writeString(a.ResourceID)
		w.writeInt(a.StartTime.UnixNano())
		w.writeString(a.ClientName)
		w.writeInt(int64(len(a.Services)))
		for _, s := range a.Services {
			w.writeString(s.ID)
			w.writeString(s.Name)
			w.writeInt(int64(s.DurationMinutes))
			w.writeInt(s.Price)
		}
	}

	return strconv.FormatUint(d.Sum64(), 16)
}

// RequestKey ключ кэша сетки по параметрам запроса: окно, режим и запрошенные ассистенты
// (пустой список - все ассистенты). Данные записей в ключ не входят,
// поэтому закэшированная сетка устаревает не дольше, чем на TTL кэша.
func RequestKey(window domain.TimeWindow, mode domain.ViewMode, resourceIDs []string) string {
	d := xxhash.New()
	w := keyWriter{d: d}

	w.writeString("request")
	w.writeString(window.Start.Location().String())
	w.writeInt(window.Start.UnixNano())
	w.writeInt(window.End.UnixNano())
	w.writeString(string(mode))
	w.writeInt(int64(len(resourceIDs)))
	for _, id := range resourceIDs {
		w.writeString(id)
	}

	return strconv.FormatUint(d.Sum64(), 16)
}

// GridVersion версия содержимого сетки: GridKey от ассистентов и записей, размещенных в ней.
// Одинаковая для сетки, построенной заново и прочитанной из кэша.
func GridVersion(grid *domain.Grid) string {
	resources := make([]domain.Resource, 0)
	appointments := make([]domain.Appointment, 0)
	for i := range grid.Columns {
		col := &grid.Columns[i]
		if len(resources) == 0 || resources[len(resources)-1].ID != col.Resource.ID {
			resources = append(resources, col.Resource)
		}
		for _, a := range col.Appointments() {
			appointments = append(appointments, *a)
		}
	}

	return GridKey(grid.Window, grid.Mode, resources, appointments)
}

// keyWriter пишет поля с разделителем, чтобы ("ab","c") и ("a","bc") давали разные ключи
type keyWriter struct {
	d *xxhash.Digest
}

func (w keyWriter) writeString(s string) {
	_, _ = w.d.WriteString(strconv.Itoa(len(s)))
	_, _ = w.d.WriteString(":")
	_, _ = w.d.WriteString(s)
}

func (w keyWriter) writeInt(n int64) {
	_, _ = w.d.WriteString(strconv.FormatInt(n, 10))
	_, _ = w.d.WriteString(";")
}
