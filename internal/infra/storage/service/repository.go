package service

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCatalog получает весь каталог услуг, отсортированный по названию
func (r *Repository) ListCatalog(ctx context.Context) ([]domain.Service, error) {
	query, args, err := psqlbuilder.Select("id", "name", "duration_minutes", "price").
		From("services").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCatalog - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCatalog - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price); err != nil {
			return nil, fmt.Errorf("%w: ListCatalog - scan service: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCatalog - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
