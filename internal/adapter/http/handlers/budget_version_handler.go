package handlers

import (
	"context"
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
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetVersionHandler handles HTTP requests for budget versions.

type BudgetVersionHandler struct {
	usecase usecase.IBudgetVersionUseCase
}

func NewBudgetVersionHandler(uc usecase.IBudgetVersionUseCase) *BudgetVersionHandler {
	return &BudgetVersionHandler{usecase: uc}
}

// CreateVersion snapshots the job's current step costs into a new immutable
// budget version.
func (h *BudgetVersionHandler) CreateVersion(c *gin.Context) {
	var payload request.BudgetVersionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	version, err := h.usecase.CreateVersion(c.Request.Context(), c.Param("job_id"), usecase.BudgetFigures{
		Discount:     payload.Discount,
		ExtraCharges: payload.ExtraCharges,
		TaxRate:      payload.TaxRate,
	})
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudgetVersion(version))
}

func (h *BudgetVersionHandler) GetVersion(c *gin.Context) {
	version, err := h.usecase.GetByID(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetVersion(version))
}

func (h *BudgetVersionHandler) ListVersionsByJob(c *gin.Context) {
	versions, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetVersions(versions))
}

func (h *BudgetVersionHandler) SendVersion(c *gin.Context) {
	h.patchVersionStatus(c, h.usecase.Send)
}

func (h *BudgetVersionHandler) ApproveVersion(c *gin.Context) {
	h.patchVersionStatus(c, h.usecase.Approve)
}

func (h *BudgetVersionHandler) RejectVersion(c *gin.Context) {
	// The rejection reason is optional; an absent or empty body is accepted.
	var payload request.BudgetRejectRequest
	_ = c.ShouldBindJSON(&payload)

	version, err := h.usecase.Reject(c.Request.Context(), c.Param("budget_id"), payload.Reason)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetVersion(version))
}

func (h *BudgetVersionHandler) DeleteVersion(c *gin.Context) {
	if err := h.usecase.DeleteVersion(c.Request.Context(), c.Param("budget_id")); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetVersionHandler) patchVersionStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.BudgetVersion, error),
) {
	version, err := updater(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetVersion(version))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidBudgetVersionID),
		errors.Is(err, usecase.ErrInvalidBudgetFigures):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetVersionNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_VERSION_NOT_FOUND", "Budget version not found", http.StatusNotFound)
	case errors.Is(err, reconcile.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, reconcile.ErrImmutableRecord):
		return pkg.NewDomainErrorSimple("BUDGET_VERSION_IMMUTABLE", "Approved budget versions cannot be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
