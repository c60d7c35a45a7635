package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestCodec_KeepsAppointmentsOnCells(t *testing.T) {
	start := time.Date(2025, 10, 12, 9, 0, 0, 0, time.UTC)
	appointment := &domain.Appointment{
		ID:         "1",
		ResourceID: "A",
		StartTime:  start,
		Services:   []domain.Service{{ID: "cut", DurationMinutes: 30, Price: 2500}},
	}
	original := &domain.Grid{
		Window: domain.TimeWindow{Start: start, End: start.Add(time.Hour)},
		Mode:   domain.ViewModeDay,
		Columns: []domain.Column{{
			Resource: domain.Resource{ID: "A", Label: "Anna"},
			Cells: []domain.Cell{
				{Slot: domain.Slot{Time: start}, Appointment: appointment, Totals: domain.Totals{TotalDurationMinutes: 30, TotalPrice: 2500}, Span: 2},
				{Slot: domain.Slot{Time: start.Add(15 * time.Minute)}},
			},
		}},
	}

	data, err := encode(original)
	require.NoError(t, err)

	decoded, err := decode(data)
	require.NoError(t, err)

	require.Len(t, decoded.Columns, 1)
	cells := decoded.Columns[0].Cells
	require.Len(t, cells, 2)
	require.NotNil(t, cells[0].Appointment)
	assert.Equal(t, "1", cells[0].Appointment.ID)
	assert.True(t, cells[0].Appointment.StartTime.Equal(start))
	assert.Equal(t, 2.0, cells[0].Span)
	assert.Nil(t, cells[1].Appointment)
	assert.Equal(t, domain.ViewModeDay, decoded.Mode)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := decode([]byte("not json"))
	assert.ErrorIs(t, err, ErrDecode)
}
