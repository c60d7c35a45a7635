package check_availability

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса проверки доступности услуг
type Request struct {
	ResourceID         string
	StartTime          time.Time
	CurrentServiceIDs  []string // Услуги, уже выбранные в записи
	ProposedServiceIDs []string // Пустой список - весь каталог
	AppointmentID      *string  // ID редактируемой записи (опционально)
}

// Response модель ответа проверки доступности
type Response struct {
	ResourceID           string
	StartTime            time.Time
	Current              domain.Totals
	CurrentEnd           time.Time
	NextAppointmentStart *time.Time // nil - дальше записей нет
	Services             []ServiceAvailability
}

// ServiceAvailability доступность одной услуги
type ServiceAvailability struct {
	Service      domain.Service
	Addable      bool
	Projected    domain.Totals // Итоги записи с добавленной услугой
	ProjectedEnd time.Time
}
