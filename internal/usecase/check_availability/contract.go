package check_availability

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	ListCatalog(ctx context.Context) ([]domain.Service, error)
}

// ResourceRepository интерфейс репозитория ассистентов
type ResourceRepository interface {
	List(ctx context.Context, ids []string) ([]domain.Resource, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
}

// Metrics метрики проверок доступности (опционально)
type Metrics interface {
	ObserveAvailabilityCheck(addable bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
