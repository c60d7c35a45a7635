package catalog

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ResourceRepository интерфейс репозитория ассистентов
type ResourceRepository interface {
	List(ctx context.Context, ids []string) ([]domain.Resource, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	ListCatalog(ctx context.Context) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
