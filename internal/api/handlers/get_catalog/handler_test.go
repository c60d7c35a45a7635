package get_catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CalendarService/internal/service/catalog/models"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) Get(ctx context.Context) (*models.CatalogResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.CatalogResponse)
	return resp, args.Error(1)
}

func TestHandle(t *testing.T) {
	svc := &serviceMock{}
	svc.On("Get", mock.Anything).Return(&models.CatalogResponse{
		Resources:   []models.ResourceResponse{{ID: "A", Label: "Anna"}},
		Services:    []models.ServiceResponse{},
		SlotMinutes: 15,
	}, nil).Once()
	svc.On("Get", mock.Anything).Return(nil, errors.New("boom"))

	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"Anna"`)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
