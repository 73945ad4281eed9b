package routers

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/delivery/http/middlewares"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/app/services/core/catalog"
	"brokerage-service/internal/app/services/core/content"
	"brokerage-service/internal/app/services/core/leads"
	"brokerage-service/internal/app/services/core/offices"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/dto/responses"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCatalogUsecase struct{}

func (stubCatalogUsecase) FindServices(ctx context.Context, query *requests.ServiceQuery) (*responses.ServiceList, error) {
	return &responses.ServiceList{Category: models.CategoryPersonal}, nil
}

type stubOfficeUsecase struct{}

func (stubOfficeUsecase) GetLocation(ctx context.Context) (*responses.Location, error) {
	return &responses.Location{Name: "Original Insurance"}, nil
}

func (stubOfficeUsecase) GetOpenStatus(ctx context.Context) (models.OpenStatus, error) {
	return models.OpenStatus{State: models.OpenStateOpen, Label: "Open now"}, nil
}

type stubContentUsecase struct{}

func (stubContentUsecase) GetSiteContent(ctx context.Context) (*responses.SiteContent, error) {
	return &responses.SiteContent{Name: "Original Insurance"}, nil
}

type stubLeadUsecase struct{}

func (stubLeadUsecase) CreateLead(ctx context.Context, request *requests.CreateLead) (*responses.Lead, error) {
	return &responses.Lead{ID: "lead-1"}, nil
}

func newTestRouter() *chi.Mux {
	log := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:         "v1",
			EndpointPrefix:  "api",
			MaxRequests:     100,
			LeadMaxRequests: 100,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		&middlewares.Middlewares{Log: log, InternalConfig: internalConfig},
		catalog.NewCatalogController(log, stubCatalogUsecase{}),
		offices.NewOfficeController(log, stubOfficeUsecase{}),
		content.NewContentController(log, stubContentUsecase{}),
		leads.NewLeadController(log, stubLeadUsecase{}),
	)
	return router
}

func TestSetupRoutes(t *testing.T) {
	router := newTestRouter()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health responds with the success envelope", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})

	t.Run("every response carries a request ID", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", "")
		assert.True(t, strings.HasPrefix(rec.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX))
	})

	t.Run("unknown routes get the error envelope", func(t *testing.T) {
		rec := do(http.MethodGet, "/api/v1/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var envelope map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("resource routes are mounted under the prefix and version", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/services", "").Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/locations", "").Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/locations/status", "").Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/content", "").Code)
	})

	t.Run("lead submissions are accepted asynchronously", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/v1/leads", `{"name":"Maria","contact":"maria@example.com"}`)
		assert.Equal(t, http.StatusAccepted, rec.Code)

		var envelope responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})
}
