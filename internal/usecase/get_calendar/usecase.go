package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
)

// UseCase use case для построения сетки календаря (день или неделя)
type UseCase struct {
	resourceRepo    ResourceRepository
	appointmentRepo AppointmentRepository
	hours           BusinessHours
	cache           GridCache
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// cache и metrics могут быть nil
func NewUseCase(
	resourceRepo ResourceRepository,
	appointmentRepo AppointmentRepository,
	hours BusinessHours,
	cache GridCache,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo:    resourceRepo,
		appointmentRepo: appointmentRepo,
		hours:           hours,
		cache:           cache,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case построения сетки календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: date=%s, mode=%s, resources=%v",
		req.Date.Format(domain.DateFormat), req.Mode, req.ResourceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно рабочих часов на дату
	window, err := buildWindow(req.Date, uc.hours)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to build window: %v", err)
		return nil, err
	}

	// 3. Пробуем взять сетку из кэша (ключ - параметры запроса)
	ids := uniqueIDs(req.ResourceIDs)
	key := scheduling.RequestKey(window, req.Mode, ids)
	if grid, ok := uc.lookupCache(ctx, key); ok {
		uc.logger.Info("GetCalendar: grid key=%s served from cache", key)
		return &Response{
			Date:      req.Date,
			Mode:      req.Mode,
			Grid:      grid,
			Version:   scheduling.GridVersion(grid),
			FromCache: true,
		}, nil
	}

	// 4. Получаем ассистентов
	resources, err := uc.resourceRepo.List(ctx, ids)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get resources: %v", err)
		return nil, fmt.Errorf("%w: failed to get resources: %v", ErrInternal, err)
	}

	if len(ids) > 0 && len(resources) != len(ids) {
		uc.logger.Warn("GetCalendar: requested %d resources, found %d", len(ids), len(resources))
		return nil, fmt.Errorf("%w: requested %d, found %d", ErrResourceNotFound, len(ids), len(resources))
	}
	if len(ids) > 0 {
		resources = orderByIDs(resources, ids)
	}

	// 5. Получаем записи за период отображения
	appointments := make([]domain.Appointment, 0)
	if len(resources) > 0 {
		from, to := appointmentsPeriod(window, req.Mode)
		filter := domain.AppointmentsFilter{
			ResourceIDs: resourceIDs(resources),
			From:        from,
			To:          to,
		}

		appointments, err = uc.appointmentRepo.GetByFilter(ctx, filter)
		if err != nil {
			uc.logger.Error("GetCalendar: failed to get appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
	}

	// 6. Строим сетку
	grid, err := scheduling.BuildGrid(window, req.Mode, resources, appointments)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidWindow) {
			uc.logger.Error("GetCalendar: invalid window: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		uc.logger.Error("GetCalendar: failed to build grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build grid: %v", ErrInternal, err)
	}

	cells := scheduling.CellCount(grid)
	if uc.metrics != nil {
		uc.metrics.ObserveGridBuild(string(req.Mode), cells)
	}

	// 7. Сохраняем в кэш (ошибка кэша не влияет на ответ)
	uc.storeCache(ctx, key, grid)

	uc.logger.Info("GetCalendar: built grid with %d columns, %d cells, %d appointments",
		len(grid.Columns), cells, len(appointments))

	return &Response{
		Date:    req.Date,
		Mode:    req.Mode,
		Grid:    grid,
		Version: scheduling.GridVersion(grid),
	}, nil
}

func (uc *UseCase) lookupCache(ctx context.Context, key string) (*domain.Grid, bool) {
	if uc.cache == nil {
		return nil, false
	}

	grid, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("GetCalendar: cache get failed for key=%s: %v", key, err)
		found = false
	}

	if uc.metrics != nil {
		uc.metrics.ObserveGridCache(found)
	}

	return grid, found
}

func (uc *UseCase) storeCache(ctx context.Context, key string, grid *domain.Grid) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.Set(ctx, key, grid); err != nil {
		uc.logger.Warn("GetCalendar: cache set failed for key=%s: %v", key, err)
	}
}

func resourceIDs(resources []domain.Resource) []string {
	ids := make([]string, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	return ids
}

// orderByIDs переставляет ассистентов в порядке запрошенных ids
func orderByIDs(resources []domain.Resource, ids []string) []domain.Resource {
	byID := make(map[string]domain.Resource, len(resources))
	for _, r := range resources {
		byID[r.ID] = r
	}

	ordered := make([]domain.Resource, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
