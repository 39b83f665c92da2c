package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"propmarketing/internal/adapter/http/handlers/mocks"
	"propmarketing/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuditHandler_ListAuditEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes parsed limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditUseCase(ctrl)
		h := NewAuditHandler(uc)

		r := gin.New()
		r.GET("/v1/audit", h.ListAuditEntries)

		uc.EXPECT().List(gomock.Any(), 10).Return([]entities.AuditEntry{
			{
				ID:        "e-1",
				Timestamp: time.Now().UTC(),
				User:      "sofia",
				Action:    entities.ActionCreate,
				Summary:   `budget "1 Smith St" created`,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/audit?limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(got) != 1 || got[0]["user"] != "sofia" {
			t.Fatalf("unexpected response: %v", got)
		}
	})

	t.Run("missing limit defaults server side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuditUseCase(ctrl)
		h := NewAuditHandler(uc)

		r := gin.New()
		r.GET("/v1/audit", h.ListAuditEntries)

		uc.EXPECT().List(gomock.Any(), 0).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/audit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
