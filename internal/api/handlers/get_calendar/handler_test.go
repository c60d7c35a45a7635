package get_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getCalendar.Response)
	return resp, args.Error(1)
}

var day = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func sampleResponse() *getCalendar.Response {
	slot := func(h, m int) domain.Slot {
		return domain.Slot{Time: time.Date(2025, 10, 15, h, m, 0, 0, time.UTC)}
	}
	appointment := &domain.Appointment{
		ID:         "1",
		ResourceID: "A",
		StartTime:  slot(8, 15).Time,
		ClientName: "Мария",
		Services:   []domain.Service{{ID: "cut", Name: "Стрижка", DurationMinutes: 30, Price: 2500}},
	}

	return &getCalendar.Response{
		Date:    day,
		Mode:    domain.ViewModeDay,
		Version: "abc123",
		Grid: &domain.Grid{
			Window: domain.TimeWindow{Start: slot(8, 0).Time, End: slot(9, 0).Time},
			Mode:   domain.ViewModeDay,
			Columns: []domain.Column{{
				Resource: domain.Resource{ID: "A", Label: "Anna"},
				Cells: []domain.Cell{
					{Slot: slot(8, 0)},
					{Slot: slot(8, 15), Appointment: appointment, Totals: domain.Totals{TotalDurationMinutes: 30, TotalPrice: 2500}, Span: 2},
					{Slot: slot(8, 30)},
					{Slot: slot(8, 45)},
				},
			}},
		},
	}
}

func TestHandle_OK(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, &getCalendar.Request{
		Date:        day,
		Mode:        domain.ViewModeWeek,
		ResourceIDs: []string{"A", "B"},
	}).Return(sampleResponse(), nil)

	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?date=2025-10-15&mode=week&resourceId=A&resourceId=B", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-10-15", body.Date)
	assert.Equal(t, "08:00", body.OpenTime)
	assert.Equal(t, "09:00", body.CloseTime)
	require.Len(t, body.Columns, 1)
	assert.Equal(t, "2025-10-15", body.Columns[0].Date)
	require.Len(t, body.Columns[0].Cells, 4)
	assert.Nil(t, body.Columns[0].Cells[0].Appointment)

	booked := body.Columns[0].Cells[1]
	assert.Equal(t, "08:15", booked.Time)
	require.NotNil(t, booked.Appointment)
	assert.Equal(t, []string{"Стрижка"}, booked.Appointment.ServiceNames)
	assert.Equal(t, 2.0, booked.Appointment.Span)
	assert.Equal(t, "abc123", body.Version)
	uc.AssertExpectations(t)
}

func TestHandle_BadRequest(t *testing.T) {
	h := NewHandler(&useCaseMock{}, logger.NewNop())

	for _, url := range []string{
		"/api/v1/calendar",
		"/api/v1/calendar?date=15.10.2025",
		"/api/v1/calendar?date=2025-10-15&mode=month",
	} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{getCalendar.ErrInvalidInput, http.StatusBadRequest},
		{getCalendar.ErrResourceNotFound, http.StatusNotFound},
		{getCalendar.ErrInvalidWindow, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		uc := &useCaseMock{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.err)

		h := NewHandler(uc, logger.NewNop())
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?date=2025-10-15", nil))

		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestHandle_ETag(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(sampleResponse(), nil)

	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?date=2025-10-15", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"abc123"`, rec.Header().Get("ETag"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?date=2025-10-15", nil)
	req.Header.Set("If-None-Match", `"abc123"`)
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())

	req.Header.Set("If-None-Match", `"stale"`)
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
