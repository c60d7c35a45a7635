package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar"
)

const (
	msgMissingDate       = "дата обязательна"
	msgInvalidQuery      = "некорректные параметры запроса: date в формате YYYY-MM-DD, mode - day или week"
	msgInvalidInput      = "некорректные параметры запроса"
	msgResourceNotFound  = "ассистент не найден"
	msgCalendarMisconfig = "рабочие часы календаря настроены некорректно"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: date (required, YYYY-MM-DD), mode (day|week, default day), resourceId (repeatable)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("mode"), query["resourceId"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getCalendar.ErrResourceNotFound):
			h.logger.Warn("GET /calendar - Resource not found: resources=%v", useCaseReq.ResourceIDs)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getCalendar.ErrInvalidWindow):
			h.logger.Error("GET /calendar - Calendar misconfigured: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCalendarMisconfig)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: date=%s, mode=%s, error=%v",
				dateStr, useCaseReq.Mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Версия содержимого сетки отдается как ETag, клиент может переспросить с If-None-Match
	if result.Version != "" {
		etag := `"` + result.Version + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			h.logger.Info("GET /calendar - Calendar not modified: date=%s, mode=%s", dateStr, result.Mode)
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	h.logger.Info("GET /calendar - Calendar built successfully: date=%s, mode=%s, columns=%d, from_cache=%t",
		dateStr, result.Mode, len(result.Grid.Columns), result.FromCache)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
