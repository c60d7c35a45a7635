package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модель запроса сетки календаря
type Request struct {
	Date        time.Time       // Дата (время не учитывается)
	Mode        domain.ViewMode // day или week
	ResourceIDs []string        // Пустой список - все ассистенты
}

// Response модель ответа с сеткой календаря
type Response struct {
	Date      time.Time
	Mode      domain.ViewMode
	Grid      *domain.Grid
	Version   string // Версия содержимого сетки (scheduling.GridVersion)
	FromCache bool
}

// BusinessHours рабочие часы календаря
type BusinessHours struct {
	Open     types.TimeString
	Close    types.TimeString
	Location *time.Location
}
