package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий записей календаря (только чтение: записи создает CRUD слой)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFilter получает записи за период [From, To) вместе с услугами
// Порядок стабильный: start_time, затем id. От него зависит правило
// "первая запись побеждает" при сопоставлении со слотами.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]domain.Appointment, error) {
	query, args, err := buildSelectAppointments(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		var clientName sql.NullString
		if err := rows.Scan(&a.ID, &a.ResourceID, &a.StartTime, &clientName); err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan appointment: %v", ErrScanRow, err)
		}
		a.ClientName = clientName.String
		a.Services = make([]domain.Service, 0)
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows error: %v", ErrScanRow, err)
	}

	if len(appointments) == 0 {
		return appointments, nil
	}

	if err := r.attachServices(ctx, appointments); err != nil {
		return nil, err
	}

	return appointments, nil
}

// GetByID получает запись по ID вместе с услугами
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select("id", "resource_id", "start_time", "client_name").
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	var clientName sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.ResourceID, &a.StartTime, &clientName)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}
	a.ClientName = clientName.String
	a.Services = make([]domain.Service, 0)

	list := []domain.Appointment{a}
	if err := r.attachServices(ctx, list); err != nil {
		return nil, err
	}

	return &list[0], nil
}

// attachServices подгружает услуги записей одним запросом
func (r *Repository) attachServices(ctx context.Context, appointments []domain.Appointment) error {
	ids := make([]string, len(appointments))
	positions := make(map[string]int, len(appointments))
	for i := range appointments {
		ids[i] = appointments[i].ID
		positions[appointments[i].ID] = i
	}

	query, args, err := buildSelectAppointmentServices(ids)
	if err != nil {
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var appointmentID string
		var s domain.Service
		if err := rows.Scan(&appointmentID, &s.ID, &s.Name, &s.DurationMinutes, &s.Price); err != nil {
			return fmt.Errorf("%w: attachServices - scan service: %v", ErrScanRow, err)
		}
		if i, ok := positions[appointmentID]; ok {
			appointments[i].Services = append(appointments[i].Services, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachServices - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func buildSelectAppointments(filter domain.AppointmentsFilter) (string, []interface{}, error) {
	if !filter.To.After(filter.From) {
		return "", nil, fmt.Errorf("%w: period end must be after start", ErrInvalidFilter)
	}

	selectBuilder := psqlbuilder.Select("id", "resource_id", "start_time", "client_name").
		From("appointments").
		Where(squirrel.GtOrEq{"start_time": filter.From}).
		Where(squirrel.Lt{"start_time": filter.To})

	// Фильтрация по ассистентам (если указаны)
	if len(filter.ResourceIDs) > 0 {
		selectBuilder = selectBuilder.Where("resource_id = ANY(?)", pq.Array(filter.ResourceIDs))
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC", "id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func buildSelectAppointmentServices(appointmentIDs []string) (string, []interface{}, error) {
	query, args, err := psqlbuilder.Select(
		"aps.appointment_id",
		"s.id",
		"s.name",
		"s.duration_minutes",
		"s.price",
	).
		From("appointment_services aps").
		Join("services s ON s.id = aps.service_id").
		Where("aps.appointment_id = ANY(?)", pq.Array(appointmentIDs)).
		OrderBy("aps.appointment_id ASC", "aps.position ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: attachServices - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}
