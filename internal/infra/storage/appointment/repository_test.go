package appointment

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestBuildSelectAppointments(t *testing.T) {
	from := time.Date(2025, 10, 12, 8, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	query, args, err := buildSelectAppointments(domain.AppointmentsFilter{
		ResourceIDs: []string{"A", "B"},
		From:        from,
		To:          to,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, resource_id, start_time, client_name FROM appointments "+
			"WHERE start_time >= $1 AND start_time < $2 AND resource_id = ANY($3) "+
			"ORDER BY start_time ASC, id ASC",
		query)
	require.Len(t, args, 3)
	assert.Equal(t, from, args[0])
	assert.Equal(t, to, args[1])
	assert.Equal(t, pq.Array([]string{"A", "B"}), args[2])
}

func TestBuildSelectAppointments_AllResources(t *testing.T) {
	from := time.Date(2025, 10, 12, 8, 0, 0, 0, time.UTC)

	query, args, err := buildSelectAppointments(domain.AppointmentsFilter{From: from, To: from.Add(time.Hour)})
	require.NoError(t, err)

	assert.NotContains(t, query, "resource_id = ANY")
	assert.Len(t, args, 2)
}

func TestBuildSelectAppointments_InvalidPeriod(t *testing.T) {
	from := time.Date(2025, 10, 12, 8, 0, 0, 0, time.UTC)

	_, _, err := buildSelectAppointments(domain.AppointmentsFilter{From: from, To: from})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestBuildSelectAppointmentServices(t *testing.T) {
	query, args, err := buildSelectAppointmentServices([]string{"a1", "a2"})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT aps.appointment_id, s.id, s.name, s.duration_minutes, s.price "+
			"FROM appointment_services aps JOIN services s ON s.id = aps.service_id "+
			"WHERE aps.appointment_id = ANY($1) "+
			"ORDER BY aps.appointment_id ASC, aps.position ASC",
		query)
	assert.Len(t, args, 1)
}
