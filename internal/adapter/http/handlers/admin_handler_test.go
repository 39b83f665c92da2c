package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"propmarketing/internal/adapter/http/handlers/mocks"
	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_ExportData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	r.GET("/v1/data/export", h.ExportData)

	uc.EXPECT().Export(gomock.Any()).Return(entities.DataExport{
		Services:   []entities.Service{{ID: "s-1"}},
		ExportedAt: time.Now().UTC(),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/data/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminHandler_ImportData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.POST("/v1/data/import", h.ImportData)

		req := httptest.NewRequest(http.MethodPost, "/v1/data/import", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty payload maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.POST("/v1/data/import", h.ImportData)

		uc.EXPECT().Import(gomock.Any(), gomock.Any()).Return(usecase.ErrEmptyImport)

		req := httptest.NewRequest(http.MethodPost, "/v1/data/import", bytes.NewBufferString(`{"services":[],"budgets":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.POST("/v1/data/import", h.ImportData)

		uc.EXPECT().Import(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/data/import", bytes.NewBufferString(`{"services":[{"id":"s-1","name":"Photos","variants":[]}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestAdminHandler_SeedAndClear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	r.POST("/v1/data/seed", h.SeedData)
	r.DELETE("/v1/data", h.ClearData)

	uc.EXPECT().Seed(gomock.Any()).Return(nil)
	uc.EXPECT().Clear(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/data/seed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("seed: expected 204, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/data", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("clear: expected 204, got %d", w.Code)
	}
}
