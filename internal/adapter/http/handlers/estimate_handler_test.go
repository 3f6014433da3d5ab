package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_reporting/internal/adapter/http/handlers/mocks"
	"crm_reporting/internal/domain/entities"
	"crm_reporting/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_ImportEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IEstimateUseCase) *gin.Engine {
		r := gin.New()
		h := NewEstimateHandler(uc)
		r.POST("/v1/estimates", h.ImportEstimate)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIEstimateUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIEstimateUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"estimate_date":"2025-01-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIEstimateUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"status":"Sold","estimate_date":"01/03/2025"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase error mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Import(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrMissingEstimateDate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"status":"Sold"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Import(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Status != "Contract Signed" || e.PriceWithTax != 10000 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				e.ID = "est-1"
				return e, nil
			},
		)

		body := `{"status":"Contract Signed","price_with_tax":10000,"estimate_date":"2025-03-01","account_id":"acc-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "est-1" {
			t.Fatalf("expected id est-1, got %v", resp["id"])
		}
	})
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IEstimateUseCase) *gin.Engine {
		r := gin.New()
		h := NewEstimateHandler(uc)
		r.GET("/v1/estimates", h.ListEstimates)
		return r
	}

	t.Run("lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Estimate{{ID: "est-1"}, {ID: "est-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		estimates, ok := resp["estimates"].([]any)
		if !ok || len(estimates) != 2 {
			t.Fatalf("unexpected estimates: %v", resp)
		}
	})

	t.Run("filters by account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ListByAccount(gomock.Any(), "acc-1").Return([]entities.Estimate{{ID: "est-1", AccountID: "acc-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates?account_id=acc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ArchiveEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing archived flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/archive", h.ArchiveEstimate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/archive", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("archived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PATCH("/v1/estimates/:id/archive", h.ArchiveEstimate)

		uc.EXPECT().Archive(gomock.Any(), "est-1", true).Return(entities.Estimate{ID: "est-1", Archived: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/archive", bytes.NewBufferString(`{"archived":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
