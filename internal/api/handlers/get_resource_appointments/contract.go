package get_resource_appointments

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByResource(ctx context.Context, req *models.ListByResourceRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
