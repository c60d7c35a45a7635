package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/scheduling"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// lookAhead горизонт выборки следующих записей ассистента
const lookAhead = 24 * time.Hour

// UseCase use case проверки, какие услуги можно добавить к записи
type UseCase struct {
	serviceRepo     ServiceRepository
	resourceRepo    ResourceRepository
	appointmentRepo AppointmentRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	serviceRepo ServiceRepository,
	resourceRepo ResourceRepository,
	appointmentRepo AppointmentRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		resourceRepo:    resourceRepo,
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности услуг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	excludeID := ptr.Value(req.AppointmentID)
	uc.logger.Info("CheckAvailability: resource=%s, start=%s, current=%v, proposed=%v, appointment=%s",
		req.ResourceID, req.StartTime.Format(time.RFC3339), req.CurrentServiceIDs, req.ProposedServiceIDs, excludeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем ассистента
	resources, err := uc.resourceRepo.List(ctx, []string{req.ResourceID})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get resource id=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}
	if len(resources) == 0 {
		uc.logger.Warn("CheckAvailability: resource id=%s not found", req.ResourceID)
		return nil, fmt.Errorf("%w: id=%s", ErrResourceNotFound, req.ResourceID)
	}

	// 3. Получаем каталог услуг
	catalog, err := uc.serviceRepo.ListCatalog(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}
	byID := make(map[string]domain.Service, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	// 4. Разрешаем текущие и предлагаемые услуги
	current, err := resolveServices(byID, req.CurrentServiceIDs)
	if err != nil {
		uc.logger.Warn("CheckAvailability: current services: %v", err)
		return nil, err
	}

	proposed := catalog
	if len(req.ProposedServiceIDs) > 0 {
		proposed, err = resolveServices(byID, req.ProposedServiceIDs)
		if err != nil {
			uc.logger.Warn("CheckAvailability: proposed services: %v", err)
			return nil, err
		}
	}

	// 5. Получаем записи ассистента после начала кандидата
	appointments, err := uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentsFilter{
		ResourceIDs: []string{req.ResourceID},
		From:        req.StartTime,
		To:          req.StartTime.Add(lookAhead),
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get appointments for resource id=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Проверяем каждую услугу
	candidate := scheduling.Candidate{
		ResourceID:      req.ResourceID,
		StartTime:       req.StartTime,
		CurrentServices: current,
	}
	totals := scheduling.Aggregate(current)

	resp := &Response{
		ResourceID: req.ResourceID,
		StartTime:  req.StartTime,
		Current:    totals,
		CurrentEnd: req.StartTime.Add(time.Duration(totals.TotalDurationMinutes) * time.Minute),
		Services:   make([]ServiceAvailability, 0, len(proposed)),
	}

	if next := scheduling.NextAppointment(candidate, appointments, excludeID); next != nil {
		resp.NextAppointmentStart = ptr.Ptr(next.StartTime)
	}

	addableCount := 0
	for _, s := range proposed {
		addable := scheduling.IsServiceAddable(candidate, s, appointments, excludeID)
		if addable {
			addableCount++
		}
		if uc.metrics != nil {
			uc.metrics.ObserveAvailabilityCheck(addable)
		}

		projected := domain.Totals{
			TotalDurationMinutes: totals.TotalDurationMinutes + s.DurationMinutes,
			TotalPrice:           totals.TotalPrice + s.Price,
		}
		resp.Services = append(resp.Services, ServiceAvailability{
			Service:      s,
			Addable:      addable,
			Projected:    projected,
			ProjectedEnd: req.StartTime.Add(time.Duration(projected.TotalDurationMinutes) * time.Minute),
		})
	}

	uc.logger.Info("CheckAvailability: resource=%s, %d of %d services addable",
		req.ResourceID, addableCount, len(proposed))

	return resp, nil
}
