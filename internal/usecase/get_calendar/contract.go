package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ResourceRepository интерфейс репозитория ассистентов
type ResourceRepository interface {
	List(ctx context.Context, ids []string) ([]domain.Resource, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error)
}

// GridCache кэш построенных сеток (опционально, nil - без кэша)
type GridCache interface {
	Get(ctx context.Context, key string) (*domain.Grid, bool, error)
	Set(ctx context.Context, key string, grid *domain.Grid) error
}

// Metrics метрики построения сетки (опционально)
type Metrics interface {
	ObserveGridBuild(mode string, cells int)
	ObserveGridCache(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
