package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/service/catalog/models"
)

// Service сервис справочных данных календаря: ассистенты, услуги и рабочие часы
type Service struct {
	resourceRepo ResourceRepository
	serviceRepo  ServiceRepository
	hours        models.BusinessHours
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	resourceRepo ResourceRepository,
	serviceRepo ServiceRepository,
	hours models.BusinessHours,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		serviceRepo:  serviceRepo,
		hours:        hours,
		logger:       logger,
	}
}

// Get возвращает справочники для построения формы записи
func (s *Service) Get(ctx context.Context) (*models.CatalogResponse, error) {
	s.logger.Info("Get: fetching calendar catalog")

	resources, err := s.resourceRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("Get: failed to get resources: %v", err)
		return nil, fmt.Errorf("%w: Get - resources: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.ListCatalog(ctx)
	if err != nil {
		s.logger.Error("Get: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: Get - services: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched %d resources, %d services", len(resources), len(services))
	return models.FromDomainCatalog(resources, services, s.hours), nil
}
