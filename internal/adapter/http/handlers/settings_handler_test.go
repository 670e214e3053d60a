package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"funilaria_autocolor/internal/adapter/http/handlers/mocks"
	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler_GetSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success answers the default when nothing was saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.GET("/v1/settings", h.GetSettings)

		uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultSystemSettings(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["name"] != "AutoColor Funnel" || body["primaryColor"] != "#2563eb" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.GET("/v1/settings", h.GetSettings)

		uc.EXPECT().Get(gomock.Any()).Return(entities.SystemSettings{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.PUT("/v1/settings", h.UpdateSettings)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.PUT("/v1/settings", h.UpdateSettings)

		uc.EXPECT().Update(gomock.Any(), "  ", "#000000").Return(entities.SystemSettings{}, usecase.ErrInvalidSettingsInput)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"name":"  ","primaryColor":"#000000"}`))
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
		uc := mocks.NewMockISettingsUseCase(ctrl)
		h := NewSettingsHandler(uc)

		r := gin.New()
		r.PUT("/v1/settings", h.UpdateSettings)

		uc.EXPECT().Update(gomock.Any(), "Funilaria do Zé", "#ff0000").Return(entities.SystemSettings{Name: "Funilaria do Zé", PrimaryColor: "#ff0000"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"name":"Funilaria do Zé","primaryColor":"#ff0000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["primaryColor"] != "#ff0000" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
