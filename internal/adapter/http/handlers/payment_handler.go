package handlers

import (
	"errors"
	request "gestion_despacho/internal/adapter/http/dto/request"
	response "gestion_despacho/internal/adapter/http/dto/response"
	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/domain/reconcile"
	"gestion_despacho/internal/usecase"
	"gestion_despacho/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RegisterPayment records a payment against the job in the path. With a
// step_id the payment is direct; without one it is distributed across the
// job's steps in step order.
func (h *PaymentHandler) RegisterPayment(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[payment][handler] register start job_id=%s", jobID)

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload job_id=%s err=%v", jobID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.RegisterPayment(c.Request.Context(), usecase.RegisterPaymentInput{
		JobID:     jobID,
		StepID:    payload.StepID,
		Amount:    payload.Amount,
		Date:      payload.Date,
		Method:    entities.PaymentMethod(payload.Method),
		Reference: payload.Reference,
	})
	if err != nil {
		log.Printf("[payment][handler] register failed job_id=%s err=%v", jobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] register success job_id=%s payment_id=%s", jobID, result.Payment.ID)

	c.JSON(http.StatusCreated, response.FromPaymentWithWarnings(result.Payment, result.Warnings))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) ListPaymentsByJob(c *gin.Context) {
	payments, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// DeletePayment reverses a direct payment. General (distributed) payments
// are irreversible and rejected with a conflict.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] delete start payment_id=%s", paymentID)

	if err := h.usecase.DeletePayment(c.Request.Context(), paymentID); err != nil {
		log.Printf("[payment][handler] delete failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] delete success payment_id=%s", paymentID)

	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, reconcile.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStepNotFound), errors.Is(err, reconcile.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Step not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentExceedsBalance):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_BALANCE", "Payment exceeds the job's outstanding balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrIrreversiblePayment):
		return pkg.NewDomainErrorSimple("PAYMENT_IRREVERSIBLE", "General payments cannot be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_DECLINED", "Payment declined by the provider", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
