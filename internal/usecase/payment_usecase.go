package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/domain/reconcile"
	"gestion_despacho/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrPaymentExceedsBalance       = errors.New("payment exceeds outstanding balance")
	ErrIrreversiblePayment         = errors.New("general payment cannot be reversed")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayDeclined      = errors.New("payment declined by provider")
)

// RegisterPaymentInput is the command to record a payment against a job.
// StepID empty means a general payment, distributed across the job's steps.
type RegisterPaymentInput struct {
	JobID     string
	StepID    string
	Amount    decimal.Decimal
	Date      time.Time
	Method    entities.PaymentMethod
	Reference string
}

// PaymentResult carries the recorded payment plus any advisory warnings
// (e.g. a direct payment that drove the step's balance negative). Warnings
// never accompany an error.
type PaymentResult struct {
	Payment  entities.Payment
	Warnings []string
}

// IPaymentUseCase encapsulates payment registration and reversal.
//
// Both operations validate everything before mutating anything, then run the
// allocator and the reconciliation cascade under the job's lock and persist
// steps, job and client in cascade order.

type IPaymentUseCase interface {
	RegisterPayment(ctx context.Context, in RegisterPaymentInput) (PaymentResult, error)
	DeletePayment(ctx context.Context, paymentID string) error
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	stepRepo    interfaces.IStepRepository
	jobRepo     interfaces.IJobRepository
	clientRepo  interfaces.IClientRepository
	gateway     interfaces.IPaymentGateway
	locks       *JobLocks
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(paymentRepo interfaces.IPaymentRepository, stepRepo interfaces.IStepRepository, jobRepo interfaces.IJobRepository, clientRepo interfaces.IClientRepository, gateway interfaces.IPaymentGateway, locks *JobLocks) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, stepRepo: stepRepo, jobRepo: jobRepo, clientRepo: clientRepo, gateway: gateway, locks: locks}
}

func validMethod(m entities.PaymentMethod) bool {
	switch m {
	case entities.PaymentMethodEfectivo, entities.PaymentMethodTransferencia, entities.PaymentMethodCheque, entities.PaymentMethodOnline:
		return true
	}
	return false
}

func (u *PaymentUseCase) RegisterPayment(ctx context.Context, in RegisterPaymentInput) (PaymentResult, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	in.StepID = strings.TrimSpace(in.StepID)
	log.Printf("[payment][usecase] register start job_id=%s step_id=%q amount=%s method=%s", in.JobID, in.StepID, in.Amount, in.Method)

	if in.JobID == "" {
		return PaymentResult{}, ErrInvalidJobID
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return PaymentResult{}, reconcile.ErrInvalidAmount
	}
	if !validMethod(in.Method) {
		return PaymentResult{}, ErrInvalidPaymentMethod
	}
	if in.Method == entities.PaymentMethodOnline && u.gateway == nil {
		return PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	unlock := u.locks.Lock(in.JobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, in.JobID)
	if err != nil {
		return PaymentResult{}, err
	}
	if j.ID == "" {
		return PaymentResult{}, ErrJobNotFound
	}

	steps, err := u.stepRepo.ListByJobID(ctx, in.JobID)
	if err != nil {
		return PaymentResult{}, err
	}

	allocated, remainder, err := reconcile.Allocate(steps, in.Amount, in.StepID)
	if err != nil {
		return PaymentResult{}, err
	}
	if in.StepID == "" && remainder.GreaterThan(decimal.Zero) {
		log.Printf("[payment][usecase] rejected: amount exceeds outstanding balance job_id=%s remainder=%s", in.JobID, remainder)
		return PaymentResult{}, ErrPaymentExceedsBalance
	}

	var warnings []string
	if in.StepID != "" {
		for _, s := range allocated {
			if s.ID == in.StepID && s.Balance.IsNegative() {
				warnings = append(warnings, fmt.Sprintf("el item %d queda con saldo negativo de %s", s.StepNumber, s.Balance.String()))
			}
		}
	}

	reference := strings.TrimSpace(in.Reference)
	if in.Method == entities.PaymentMethodOnline {
		log.Printf("[payment][usecase] charging gateway job_id=%s amount=%s", in.JobID, in.Amount)
		providerID, providerStatus, err := u.gateway.Charge(ctx, in.Amount, fmt.Sprintf("Trabajo %s", in.JobID))
		if err != nil {
			log.Printf("[payment][usecase] gateway charge failed job_id=%s err=%v", in.JobID, err)
			return PaymentResult{}, err
		}
		if providerStatus != "approved" {
			log.Printf("[payment][usecase] gateway declined job_id=%s provider_status=%s", in.JobID, providerStatus)
			return PaymentResult{}, ErrPaymentGatewayDeclined
		}
		reference = providerID
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	p := entities.Payment{
		ID:        uuid.NewString(),
		JobID:     in.JobID,
		StepID:    in.StepID,
		Amount:    in.Amount,
		Date:      date,
		Method:    in.Method,
		Reference: reference,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		return PaymentResult{}, err
	}

	if err := u.persistAllocation(ctx, j, steps, allocated); err != nil {
		return PaymentResult{}, err
	}

	log.Printf("[payment][usecase] register success job_id=%s payment_id=%s", in.JobID, created.ID)
	return PaymentResult{Payment: created, Warnings: warnings}, nil
}

// DeletePayment reverses a direct payment's effect on its step and cascades.
// General payments are rejected: their exact per-step allocation is not
// recorded, so the reversal is not reconstructible.
func (u *PaymentUseCase) DeletePayment(ctx context.Context, paymentID string) error {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ErrInvalidPaymentID
	}

	p, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPaymentNotFound
	}
	if p.StepID == "" {
		return ErrIrreversiblePayment
	}

	unlock := u.locks.Lock(p.JobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, p.JobID)
	if err != nil {
		return err
	}
	if j.ID == "" {
		return ErrJobNotFound
	}

	steps, err := u.stepRepo.ListByJobID(ctx, p.JobID)
	if err != nil {
		return err
	}

	updated := make([]entities.Step, len(steps))
	copy(updated, steps)
	found := false
	for i := range updated {
		if updated[i].ID != p.StepID {
			continue
		}
		updated[i].Paid = updated[i].Paid.Sub(p.Amount)
		updated[i].Balance = reconcile.StepBalance(updated[i])
		updated[i].UpdatedAt = time.Now().UTC()
		found = true
		break
	}
	if !found {
		return ErrStepNotFound
	}

	if err := u.paymentRepo.Delete(ctx, paymentID); err != nil {
		return err
	}
	if err := u.persistAllocation(ctx, j, steps, updated); err != nil {
		return err
	}
	log.Printf("[payment][usecase] delete success job_id=%s payment_id=%s", p.JobID, paymentID)
	return nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.paymentRepo.ListByJobID(ctx, jobID)
}

// persistAllocation writes the touched steps, then the job, then the client,
// mirroring the cascade's phase order.
func (u *PaymentUseCase) persistAllocation(ctx context.Context, j entities.Job, before, after []entities.Step) error {
	byID := make(map[string]entities.Step, len(before))
	for _, s := range before {
		byID[s.ID] = s
	}
	for _, s := range after {
		prev, ok := byID[s.ID]
		if ok && prev.Paid.Equal(s.Paid) && prev.Cost.Equal(s.Cost) {
			continue
		}
		s.UpdatedAt = time.Now().UTC()
		if _, err := u.stepRepo.Save(ctx, s); err != nil {
			return err
		}
	}

	jobs, err := u.jobRepo.ListByClientID(ctx, j.ClientID)
	if err != nil {
		return err
	}
	updated, debt := reconcile.Cascade(j, after, jobs)
	if _, err := u.jobRepo.Save(ctx, updated); err != nil {
		return err
	}

	client, err := u.clientRepo.GetByID(ctx, j.ClientID)
	if err != nil {
		return err
	}
	if client.ID == "" {
		return ErrClientNotFound
	}
	client.DebtTotal = debt
	client.UpdatedAt = time.Now().UTC()
	_, err = u.clientRepo.Save(ctx, client)
	return err
}
