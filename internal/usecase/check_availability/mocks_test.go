package check_availability

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

type serviceRepoMock struct {
	mock.Mock
}

func (m *serviceRepoMock) ListCatalog(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]domain.Service)
	return services, args.Error(1)
}

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

type metricsMock struct {
	mock.Mock
}

func (m *metricsMock) ObserveAvailabilityCheck(addable bool) {
	m.Called(addable)
}
