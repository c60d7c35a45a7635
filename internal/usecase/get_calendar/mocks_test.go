package get_calendar

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type resourceRepoMock struct {
	mock.Mock
}

func (m *resourceRepoMock) List(ctx context.Context, ids []string) ([]domain.Resource, error) {
	args := m.Called(ctx, ids)
	resources, _ := args.Get(0).([]domain.Resource)
	return resources, args.Error(1)
}

type appointmentRepoMock struct {
	mock.Mock
}

func (m *appointmentRepoMock) GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	args := m.Called(ctx, filter)
	appointments, _ := args.Get(0).([]domain.Appointment)
	return appointments, args.Error(1)
}

type gridCacheMock struct {
	mock.Mock
}

func (m *gridCacheMock) Get(ctx context.Context, key string) (*domain.Grid, bool, error) {
	args := m.Called(ctx, key)
	grid, _ := args.Get(0).(*domain.Grid)
	return grid, args.Bool(1), args.Error(2)
}

func (m *gridCacheMock) Set(ctx context.Context, key string, grid *domain.Grid) error {
	args := m.Called(ctx, key, grid)
	return args.Error(0)
}

type metricsMock struct {
	mock.Mock
}

func (m *metricsMock) ObserveGridBuild(mode string, cells int) {
	m.Called(mode, cells)
}

func (m *metricsMock) ObserveGridCache(hit bool) {
	m.Called(hit)
}
