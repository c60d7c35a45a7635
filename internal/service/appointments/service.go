package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
)

// Service сервис чтения записей календаря
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
// location - часовой пояс календаря, в нем считаются границы суток
func NewService(appointmentRepo AppointmentRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		logger:          logger,
	}
}

// GetByID получает запись по ID вместе с итогами по услугам
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	if strings.TrimSpace(id) == "" || id == domain.DraftAppointmentID {
		s.logger.Warn("GetByID: invalid appointment id=%q", id)
		return nil, fmt.Errorf("%w: invalid appointment id", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appointment), nil
}

// ListByResource получает записи ассистента за сутки
func (s *Service) ListByResource(ctx context.Context, req *models.ListByResourceRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByResource: fetching appointments for resource=%s, date=%s",
		req.ResourceID, req.Date.Format(domain.DateFormat))

	if strings.TrimSpace(req.ResourceID) == "" || req.Date.IsZero() {
		s.logger.Warn("ListByResource: resource and date are required")
		return nil, fmt.Errorf("%w: resourceId and date are required", ErrInvalidInput)
	}

	filter := req.ToDomainFilter(s.location)
	appointments, err := s.appointmentRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByResource: repository error for resource=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: ListByResource - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByResource: successfully fetched %d appointments for resource=%s",
		len(appointments), req.ResourceID)
	return models.FromDomainAppointmentList(appointments), nil
}
