package handlers

import (
	"errors"
	request "gestion_despacho/internal/adapter/http/dto/request"
	response "gestion_despacho/internal/adapter/http/dto/response"
	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/domain/reconcile"
	"gestion_despacho/internal/usecase"
	"gestion_despacho/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload    = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
	errInvalidStepPayload   = pkg.NewDomainErrorSimple("INVALID_STEP_INPUT", "Invalid step payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for jobs and their steps.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	template := make([]usecase.StepTemplate, 0, len(payload.Steps))
	for _, s := range payload.Steps {
		template = append(template, usecase.StepTemplate{Name: s.Name, Cost: s.Cost})
	}

	job, steps, err := h.usecase.CreateJob(c.Request.Context(), payload.ClientID, payload.Title, payload.Description, payload.BudgetInitial, template)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobWithSteps(job, steps))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListJobsByClient(c *gin.Context) {
	jobs, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.DeleteJob(c.Request.Context(), c.Param("job_id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *JobHandler) ListSteps(c *gin.Context) {
	steps, err := h.usecase.ListSteps(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSteps(steps))
}

func (h *JobHandler) AddStep(c *gin.Context) {
	var payload request.StepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStepPayload.HTTPStatus, errInvalidStepPayload.ToHTTPError())
		return
	}

	step, err := h.usecase.AddStep(c.Request.Context(), c.Param("job_id"), payload.Name, payload.Cost)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStep(step))
}

func (h *JobHandler) UpdateStepCost(c *gin.Context) {
	var payload request.StepCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStepPayload.HTTPStatus, errInvalidStepPayload.ToHTTPError())
		return
	}

	step, err := h.usecase.UpdateStepCost(c.Request.Context(), c.Param("step_id"), payload.Cost)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStep(step))
}

func (h *JobHandler) DeleteStep(c *gin.Context) {
	if err := h.usecase.DeleteStep(c.Request.Context(), c.Param("step_id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// TransitionJobStatus changes the job's lifecycle status. Advisory warnings
// (e.g. completing with an outstanding balance) come back alongside the job
// and never block the transition.
func (h *JobHandler) TransitionJobStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	job, warnings, err := h.usecase.TransitionJobStatus(c.Request.Context(), c.Param("job_id"), entities.JobStatus(payload.Status))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobTransition(job, warnings))
}

func (h *JobHandler) TransitionStepStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	step, warnings, err := h.usecase.TransitionStepStatus(c.Request.Context(), c.Param("step_id"), entities.StepStatus(payload.Status))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStepTransition(step, warnings))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidStepID),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidJobTitle),
		errors.Is(err, usecase.ErrInvalidCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Step not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReferentialIntegrity):
		return pkg.NewDomainErrorSimple("RECORD_REFERENCED", "Record still referenced by payments", http.StatusConflict)
	case errors.Is(err, reconcile.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
