package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestion_despacho/internal/adapter/http/handlers/mocks"
	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/domain/reconcile"
	"gestion_despacho/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payments", h.RegisterPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("exceeds balance conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payments", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).Return(usecase.PaymentResult{}, usecase.ErrPaymentExceedsBalance)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments", bytes.NewBufferString(`{"amount":500,"method":"efectivo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/payments", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.RegisterPaymentInput) (usecase.PaymentResult, error) {
				if in.JobID != "job-1" || in.StepID != "s-1" || !in.Amount.Equal(decimal.NewFromInt(80)) {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.PaymentResult{
					Payment:  entities.Payment{ID: "p-1", JobID: "job-1", StepID: "s-1", Amount: in.Amount, Method: entities.PaymentMethodEfectivo},
					Warnings: []string{"step balance is negative"},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/payments", bytes.NewBufferString(`{"step_id":"s-1","amount":80,"method":"efectivo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "p-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if warnings, ok := body["warnings"].([]any); !ok || len(warnings) != 1 {
			t.Fatalf("expected one warning, got body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_DeletePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("irreversible conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/payments/:payment_id", h.DeletePayment)

		uc.EXPECT().DeletePayment(gomock.Any(), "p-1").Return(usecase.ErrIrreversiblePayment)

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/payments/:payment_id", h.DeletePayment)

		uc.EXPECT().DeletePayment(gomock.Any(), "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidJobID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{reconcile.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{reconcile.ErrStepNotFound, http.StatusNotFound},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrPaymentExceedsBalance, http.StatusConflict},
		{usecase.ErrIrreversiblePayment, http.StatusConflict},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrPaymentGatewayDeclined, http.StatusUnprocessableEntity},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
