package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-CalendarService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные запроса"
	msgResourceNotFound   = "ассистент не найден"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrResourceNotFound):
			h.logger.Warn("POST /availability/check - Resource not found: resource_id=%s", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, checkAvailability.ErrServiceNotFound):
			h.logger.Warn("POST /availability/check - Service not found: %v", err)
			handlers.RespondUnprocessable(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: resource_id=%s, error=%v",
				req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - Availability checked: resource_id=%s, services=%d",
		req.ResourceID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
