package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to get catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog - Catalog retrieved: resources=%d, services=%d",
		len(catalog.Resources), len(catalog.Services))
	handlers.RespondJSON(w, http.StatusOK, catalog)
}
