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
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"title":"Escritura"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with template steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), "client-1", "Escritura", "", gomock.Any(), gomock.Len(2)).Return(
			entities.Job{ID: "job-1", ClientID: "client-1", Title: "Escritura"},
			[]entities.Step{{ID: "s-1", JobID: "job-1", StepNumber: 1}, {ID: "s-2", JobID: "job-1", StepNumber: 2}},
			nil,
		)

		payload := `{"client_id":"client-1","title":"Escritura","steps":[{"name":"Redacción","cost":100},{"name":"Firma","cost":200}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "job-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if steps, ok := body["steps"].([]any); !ok || len(steps) != 2 {
			t.Fatalf("expected two steps, got body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_TransitionJobStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/status", h.TransitionJobStatus)

		uc.EXPECT().TransitionJobStatus(gomock.Any(), "job-1", entities.JobStatusEnCurso).Return(entities.Job{}, nil, reconcile.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/status", bytes.NewBufferString(`{"status":"en_curso"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("completion returns warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/status", h.TransitionJobStatus)

		uc.EXPECT().TransitionJobStatus(gomock.Any(), "job-1", entities.JobStatusCompletado).Return(
			entities.Job{ID: "job-1", Status: entities.JobStatusCompletado},
			[]string{"job has an outstanding balance"},
			nil,
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/status", bytes.NewBufferString(`{"status":"completado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if warnings, ok := body["warnings"].([]any); !ok || len(warnings) != 1 {
			t.Fatalf("expected warnings, got body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_DeleteStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	r := gin.New()
	r.DELETE("/v1/steps/:step_id", h.DeleteStep)

	uc.EXPECT().DeleteStep(gomock.Any(), "s-1").Return(usecase.ErrReferentialIntegrity)

	req := httptest.NewRequest(http.MethodDelete, "/v1/steps/s-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestMapJobError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidJobID, http.StatusBadRequest},
		{usecase.ErrInvalidStepID, http.StatusBadRequest},
		{usecase.ErrInvalidJobTitle, http.StatusBadRequest},
		{usecase.ErrInvalidCost, http.StatusBadRequest},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrStepNotFound, http.StatusNotFound},
		{usecase.ErrClientNotFound, http.StatusNotFound},
		{usecase.ErrReferentialIntegrity, http.StatusConflict},
		{reconcile.ErrInvalidTransition, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapJobError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
