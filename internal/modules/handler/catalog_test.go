package handler

import (
	"net/http"
	"testing"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"github.com/serviceflow/serviceflow-api/internal/modules/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestServiceHandler_CreateService(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"name":"Haircut","duration_minutes":30,"price":"15.50"}`,
			setup: func(m *MockCatalogService) {
				m.On("Create", mock.Anything, alice, uint(10), mock.MatchedBy(func(in service.CreateServiceInput) bool {
					return in.Name == "Haircut" && in.Price != nil && in.Price.Equal(decimal.RequireFromString("15.5"))
				}), false).Return(&model.Service{ID: 20, ProjectID: 10, Name: "Haircut"}, true, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "numeric price is accepted",
			body: `{"name":"Haircut","duration_minutes":30,"price":15.5}`,
			setup: func(m *MockCatalogService) {
				m.On("Create", mock.Anything, alice, uint(10), mock.Anything, false).
					Return(&model.Service{ID: 20}, false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero duration",
			body:           `{"name":"Haircut","duration_minutes":0,"price":"1"}`,
			setup:          func(*MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing price",
			body:           `{"name":"Haircut","duration_minutes":30}`,
			setup:          func(*MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "null price",
			body:           `{"name":"Haircut","duration_minutes":30,"price":null}`,
			setup:          func(*MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "price out of range",
			body: `{"name":"Haircut","duration_minutes":30,"price":"-1"}`,
			setup: func(m *MockCatalogService) {
				m.On("Create", mock.Anything, alice, uint(10), mock.Anything, false).
					Return(nil, false, service.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "foreign project",
			body: `{"name":"Haircut","duration_minutes":30,"price":"1"}`,
			setup: func(m *MockCatalogService) {
				m.On("Create", mock.Anything, alice, uint(10), mock.Anything, false).
					Return(nil, false, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCatalogService{}
			tt.setup(svc)

			router := setupRouter()
			router.POST("/manage/projects/:project_id/services", asUser(alice), NewServiceHandler(svc).CreateService)

			w := doRaw(router, http.MethodPost, "/manage/projects/10/services", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestServiceHandler_Routes(t *testing.T) {
	svc := &MockCatalogService{}
	h := NewServiceHandler(svc)
	router := setupRouter()
	g := router.Group("/manage/projects/:project_id/services", asUser(alice))
	g.GET("", h.ListServices)
	g.GET("/:service_id", h.GetService)
	g.PUT("/:service_id", h.UpdateService)
	g.DELETE("/:service_id", h.DeleteService)

	svc.On("List", mock.Anything, alice, uint(10), 0, 100).Return([]*model.Service{{ID: 20}}, nil)
	svc.On("Get", mock.Anything, alice, uint(10), uint(20)).Return(&model.Service{ID: 20}, nil)
	svc.On("Get", mock.Anything, alice, uint(11), uint(20)).Return(nil, service.ErrNotFound)
	svc.On("Update", mock.Anything, alice, uint(10), uint(20), mock.MatchedBy(func(in service.UpdateServiceInput) bool {
		return in.DurationMinutes != nil && *in.DurationMinutes == 45 && in.Name == nil
	})).Return(&model.Service{ID: 20, DurationMinutes: 45}, nil)
	svc.On("Delete", mock.Anything, alice, uint(10), uint(20)).Return(nil)

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/manage/projects/10/services", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/manage/projects/10/services/20", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/manage/projects/11/services/20", nil).Code)
	assert.Equal(t, http.StatusOK, doRaw(router, http.MethodPut, "/manage/projects/10/services/20", `{"duration_minutes":45}`).Code)
	assert.Equal(t, http.StatusBadRequest, doRaw(router, http.MethodPut, "/manage/projects/10/services/20", `{"duration_minutes":-5}`).Code)
	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/manage/projects/10/services/20", nil).Code)

	svc.AssertExpectations(t)
}
