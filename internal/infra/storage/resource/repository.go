package resource

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий ассистентов (колонок календаря)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ассистентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает ассистентов в порядке отображения
// ids - фильтр по ID (пустой - все активные ассистенты)
func (r *Repository) List(ctx context.Context, ids []string) ([]domain.Resource, error) {
	selectBuilder := psqlbuilder.Select("id", "label").
		From("resources").
		Where("is_active = TRUE").
		OrderBy("position ASC", "id ASC")

	if len(ids) > 0 {
		selectBuilder = selectBuilder.Where("id = ANY(?)", pq.Array(ids))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]domain.Resource, 0)
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.Label); err != nil {
			return nil, fmt.Errorf("%w: List - scan resource: %v", ErrScanRow, err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}
