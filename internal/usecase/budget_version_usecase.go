package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/domain/reconcile"
	"gestion_despacho/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBudgetVersionID = errors.New("invalid budget version id")
	ErrBudgetVersionNotFound  = errors.New("budget version not found")
	ErrInvalidBudgetFigures   = errors.New("invalid budget figures")
)

// BudgetFigures are the caller-supplied inputs to a budget snapshot. The
// subtotal comes from the job's current step costs; tax is computed as
// (subtotal - discount + extra charges) * TaxRate.
type BudgetFigures struct {
	Discount     decimal.Decimal
	ExtraCharges decimal.Decimal
	TaxRate      decimal.Decimal
}

// IBudgetVersionUseCase exposes the budget (presupuesto) workflow.
//
// A version freezes the job's step costs at creation time; later step edits
// never touch it. Version numbers grow monotonically per job and are never
// reused, even across deletions.

type IBudgetVersionUseCase interface {
	CreateVersion(ctx context.Context, jobID string, fig BudgetFigures) (entities.BudgetVersion, error)
	GetByID(ctx context.Context, id string) (entities.BudgetVersion, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.BudgetVersion, error)
	Send(ctx context.Context, id string) (entities.BudgetVersion, error)
	Approve(ctx context.Context, id string) (entities.BudgetVersion, error)
	Reject(ctx context.Context, id, reason string) (entities.BudgetVersion, error)
	DeleteVersion(ctx context.Context, id string) error
}

type BudgetVersionUseCase struct {
	budgetRepo interfaces.IBudgetVersionRepository
	jobRepo    interfaces.IJobRepository
	stepRepo   interfaces.IStepRepository
	locks      *JobLocks
}

var _ IBudgetVersionUseCase = (*BudgetVersionUseCase)(nil)

func NewBudgetVersionUseCase(budgetRepo interfaces.IBudgetVersionRepository, jobRepo interfaces.IJobRepository, stepRepo interfaces.IStepRepository, locks *JobLocks) *BudgetVersionUseCase {
	return &BudgetVersionUseCase{budgetRepo: budgetRepo, jobRepo: jobRepo, stepRepo: stepRepo, locks: locks}
}

func (u *BudgetVersionUseCase) CreateVersion(ctx context.Context, jobID string, fig BudgetFigures) (entities.BudgetVersion, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.BudgetVersion{}, ErrInvalidJobID
	}
	if fig.Discount.IsNegative() || fig.ExtraCharges.IsNegative() || fig.TaxRate.IsNegative() {
		return entities.BudgetVersion{}, ErrInvalidBudgetFigures
	}

	unlock := u.locks.Lock(jobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.BudgetVersion{}, err
	}
	if j.ID == "" {
		return entities.BudgetVersion{}, ErrJobNotFound
	}

	steps, err := u.stepRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.BudgetVersion{}, err
	}
	existing, err := u.budgetRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.BudgetVersion{}, err
	}

	subtotal := reconcile.JobTotals(steps).CostFinal
	base := subtotal.Sub(fig.Discount).Add(fig.ExtraCharges)
	tax := base.Mul(fig.TaxRate).Round(2)

	now := time.Now().UTC()
	v := entities.BudgetVersion{
		ID:           uuid.NewString(),
		JobID:        jobID,
		Version:      reconcile.NextVersion(existing, j.LastBudgetVersion),
		Status:       entities.BudgetStatusBorrador,
		Subtotal:     subtotal,
		Discount:     fig.Discount,
		ExtraCharges: fig.ExtraCharges,
		Tax:          tax,
		Total:        base.Add(tax),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.budgetRepo.Create(ctx, v)
	if err != nil {
		return entities.BudgetVersion{}, err
	}

	j.LastBudgetVersion = v.Version
	j.UpdatedAt = now
	if _, err := u.jobRepo.Save(ctx, j); err != nil {
		return entities.BudgetVersion{}, err
	}
	return created, nil
}

func (u *BudgetVersionUseCase) GetByID(ctx context.Context, id string) (entities.BudgetVersion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetVersion{}, ErrInvalidBudgetVersionID
	}
	v, err := u.budgetRepo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetVersion{}, err
	}
	if v.ID == "" {
		return entities.BudgetVersion{}, ErrBudgetVersionNotFound
	}
	return v, nil
}

func (u *BudgetVersionUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.BudgetVersion, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.budgetRepo.ListByJobID(ctx, jobID)
}

func (u *BudgetVersionUseCase) Send(ctx context.Context, id string) (entities.BudgetVersion, error) {
	return u.transition(ctx, id, entities.BudgetStatusEnviado, "")
}

func (u *BudgetVersionUseCase) Approve(ctx context.Context, id string) (entities.BudgetVersion, error) {
	return u.transition(ctx, id, entities.BudgetStatusAprobado, "")
}

func (u *BudgetVersionUseCase) Reject(ctx context.Context, id, reason string) (entities.BudgetVersion, error) {
	return u.transition(ctx, id, entities.BudgetStatusRechazado, reason)
}

func (u *BudgetVersionUseCase) transition(ctx context.Context, id string, status entities.BudgetStatus, reason string) (entities.BudgetVersion, error) {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetVersion{}, err
	}

	transitioned, err := reconcile.TransitionBudget(v, status, reason)
	if err != nil {
		return v, err
	}
	return u.budgetRepo.Save(ctx, transitioned)
}

func (u *BudgetVersionUseCase) DeleteVersion(ctx context.Context, id string) error {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := reconcile.CanDeleteBudget(v); err != nil {
		return err
	}
	return u.budgetRepo.Delete(ctx, v.ID)
}
