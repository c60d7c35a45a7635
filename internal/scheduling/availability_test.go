package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestIsServiceAddable(t *testing.T) {
	existing := []domain.Appointment{
		{ID: "appt-10", ResourceID: "A", StartTime: at(sunday, 10, 0), Services: []domain.Service{svc("cut", 30, 2500)}},
	}
	candidateA := Candidate{ResourceID: "A", StartTime: at(sunday, 9, 0)}
	candidateB := Candidate{ResourceID: "B", StartTime: at(sunday, 9, 0)}

	tests := []struct {
		name         string
		candidate    Candidate
		proposed     domain.Service
		appointments []domain.Appointment
		exclude      string
		want         bool
	}{
		{
			name:         "back-to-back is allowed",
			candidate:    candidateA,
			proposed:     svc("s60", 60, 0),
			appointments: existing,
			want:         true,
		},
		{
			name:         "one minute over conflicts",
			candidate:    candidateA,
			proposed:     svc("s61", 61, 0),
			appointments: existing,
			want:         false,
		},
		{
			name:         "other resource is not affected",
			candidate:    candidateB,
			proposed:     svc("s61", 61, 0),
			appointments: existing,
			want:         true,
		},
		{
			name:         "no appointments",
			candidate:    candidateA,
			proposed:     svc("long", 600, 0),
			appointments: nil,
			want:         true,
		},
		{
			name: "current services count towards the end",
			candidate: Candidate{
				ResourceID:      "A",
				StartTime:       at(sunday, 9, 0),
				CurrentServices: []domain.Service{svc("cut", 45, 0)},
			},
			proposed:     svc("wash", 20, 0),
			appointments: existing,
			want:         false,
		},
		{
			name: "current services exactly fill the gap",
			candidate: Candidate{
				ResourceID:      "A",
				StartTime:       at(sunday, 9, 0),
				CurrentServices: []domain.Service{svc("cut", 45, 0)},
			},
			proposed:     svc("wash", 15, 0),
			appointments: existing,
			want:         true,
		},
		{
			name:      "earlier appointments are ignored even if overlapping",
			candidate: Candidate{ResourceID: "A", StartTime: at(sunday, 10, 15)},
			proposed:  svc("s60", 60, 0),
			appointments: []domain.Appointment{
				{ID: "long", ResourceID: "A", StartTime: at(sunday, 10, 0), Services: []domain.Service{svc("x", 120, 0)}},
			},
			want: true,
		},
		{
			name:         "same start is not later",
			candidate:    Candidate{ResourceID: "A", StartTime: at(sunday, 10, 0)},
			proposed:     svc("s60", 60, 0),
			appointments: existing,
			want:         true,
		},
		{
			name:         "self exclusion while editing",
			candidate:    Candidate{ResourceID: "A", StartTime: at(sunday, 9, 30), CurrentServices: existing[0].Services},
			proposed:     svc("s90", 90, 0),
			appointments: existing,
			exclude:      "appt-10",
			want:         true,
		},
		{
			name:         "editing appointment at its own start",
			candidate:    Candidate{ResourceID: "A", StartTime: at(sunday, 10, 0), CurrentServices: existing[0].Services},
			proposed:     svc("s240", 240, 0),
			appointments: existing,
			exclude:      "appt-10",
			want:         true,
		},
		{
			name:      "editing still respects the next appointment",
			candidate: Candidate{ResourceID: "A", StartTime: at(sunday, 10, 0), CurrentServices: existing[0].Services},
			proposed:  svc("s60", 60, 0),
			appointments: append([]domain.Appointment{
				{ID: "appt-11", ResourceID: "A", StartTime: at(sunday, 11, 0)},
			}, existing...),
			exclude: "appt-10",
			want:    false,
		},
		{
			name:      "draft placeholder is ignored",
			candidate: candidateA,
			proposed:  svc("s120", 120, 0),
			appointments: []domain.Appointment{
				{ID: domain.DraftAppointmentID, ResourceID: "A", StartTime: at(sunday, 9, 30)},
			},
			want: true,
		},
		{
			name:      "nearest later appointment decides",
			candidate: candidateA,
			proposed:  svc("s90", 90, 0),
			appointments: []domain.Appointment{
				{ID: "late", ResourceID: "A", StartTime: at(sunday, 15, 0)},
				{ID: "near", ResourceID: "A", StartTime: at(sunday, 10, 0)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsServiceAddable(tt.candidate, tt.proposed, tt.appointments, tt.exclude)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsServiceAddable_ZeroDurationNeverCausesConflict(t *testing.T) {
	appointments := []domain.Appointment{
		{ID: "next", ResourceID: "A", StartTime: at(sunday, 10, 0)},
	}
	fits := Candidate{ResourceID: "A", StartTime: at(sunday, 9, 0), CurrentServices: []domain.Service{svc("cut", 60, 0)}}
	over := Candidate{ResourceID: "A", StartTime: at(sunday, 9, 0), CurrentServices: []domain.Service{svc("cut", 75, 0)}}

	zero := svc("consult", 0, 0)

	assert.True(t, IsServiceAddable(fits, zero, appointments, ""))
	// кандидат уже конфликтует, нулевая услуга ничего не меняет
	assert.Equal(t,
		IsServiceAddable(over, svc("none", 0, 0), appointments, ""),
		IsServiceAddable(over, zero, appointments, ""))
}

func TestIsServiceAddable_Idempotent(t *testing.T) {
	appointments := []domain.Appointment{
		{ID: "appt-10", ResourceID: "A", StartTime: at(sunday, 10, 0)},
	}
	candidate := Candidate{ResourceID: "A", StartTime: at(sunday, 9, 0)}

	first := IsServiceAddable(candidate, svc("s61", 61, 0), appointments, "")
	second := IsServiceAddable(candidate, svc("s61", 61, 0), appointments, "")
	assert.Equal(t, first, second)
	assert.False(t, first)
}

func TestNextAppointment(t *testing.T) {
	appointments := []domain.Appointment{
		{ID: "late", ResourceID: "A", StartTime: at(sunday, 15, 0)},
		{ID: domain.DraftAppointmentID, ResourceID: "A", StartTime: at(sunday, 9, 30)},
		{ID: "other", ResourceID: "B", StartTime: at(sunday, 9, 45)},
		{ID: "self", ResourceID: "A", StartTime: at(sunday, 10, 0)},
		{ID: "near", ResourceID: "A", StartTime: at(sunday, 11, 0)},
	}
	candidate := Candidate{ResourceID: "A", StartTime: at(sunday, 9, 0)}

	next := NextAppointment(candidate, appointments, "self")
	require.NotNil(t, next)
	assert.Equal(t, "near", next.ID)

	assert.Nil(t, NextAppointment(Candidate{ResourceID: "A", StartTime: at(sunday, 16, 0)}, appointments, ""))
}
