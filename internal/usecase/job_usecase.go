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
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidStepID        = errors.New("invalid step id")
	ErrStepNotFound         = errors.New("step not found")
	ErrInvalidJobTitle      = errors.New("invalid job title")
	ErrInvalidCost          = errors.New("invalid cost")
	ErrReferentialIntegrity = errors.New("record still referenced by payments")
)

// StepTemplate is one line of a job-type template, cloned into a real step
// when a job is created from that template.
type StepTemplate struct {
	Name string
	Cost decimal.Decimal
}

// IJobUseCase exposes job and step operations.
//
// Every mutation that can move money figures runs the full reconciliation
// cascade (steps -> job totals -> client debt) before returning, under the
// job's lock, so callers always observe consistent entities.

type IJobUseCase interface {
	CreateJob(ctx context.Context, clientID, title, description string, budgetInitial decimal.Decimal, template []StepTemplate) (entities.Job, []entities.Step, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
	AddStep(ctx context.Context, jobID, name string, cost decimal.Decimal) (entities.Step, error)
	UpdateStepCost(ctx context.Context, stepID string, cost decimal.Decimal) (entities.Step, error)
	DeleteStep(ctx context.Context, stepID string) error
	ListSteps(ctx context.Context, jobID string) ([]entities.Step, error)
	TransitionJobStatus(ctx context.Context, jobID string, newStatus entities.JobStatus) (entities.Job, []string, error)
	TransitionStepStatus(ctx context.Context, stepID string, newStatus entities.StepStatus) (entities.Step, []string, error)
}

type JobUseCase struct {
	jobRepo     interfaces.IJobRepository
	stepRepo    interfaces.IStepRepository
	paymentRepo interfaces.IPaymentRepository
	clientRepo  interfaces.IClientRepository
	locks       *JobLocks
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobRepo interfaces.IJobRepository, stepRepo interfaces.IStepRepository, paymentRepo interfaces.IPaymentRepository, clientRepo interfaces.IClientRepository, locks *JobLocks) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, stepRepo: stepRepo, paymentRepo: paymentRepo, clientRepo: clientRepo, locks: locks}
}

func (u *JobUseCase) CreateJob(ctx context.Context, clientID, title, description string, budgetInitial decimal.Decimal, template []StepTemplate) (entities.Job, []entities.Step, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Job{}, nil, ErrInvalidClientID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Job{}, nil, ErrInvalidJobTitle
	}
	if budgetInitial.IsNegative() {
		return entities.Job{}, nil, ErrInvalidCost
	}
	for _, tpl := range template {
		if strings.TrimSpace(tpl.Name) == "" || tpl.Cost.IsNegative() {
			return entities.Job{}, nil, ErrInvalidCost
		}
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Job{}, nil, err
	}
	if client.ID == "" {
		return entities.Job{}, nil, ErrClientNotFound
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		Title:         title,
		Description:   strings.TrimSpace(description),
		BudgetInitial: budgetInitial,
		Status:        entities.JobStatusBorrador,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	steps := make([]entities.Step, 0, len(template))
	for i, tpl := range template {
		s := entities.Step{
			ID:         uuid.NewString(),
			JobID:      j.ID,
			StepNumber: i + 1,
			Name:       strings.TrimSpace(tpl.Name),
			Cost:       tpl.Cost,
			Balance:    tpl.Cost,
			Status:     entities.StepStatusPendiente,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		steps = append(steps, s)
	}

	totals := reconcile.JobTotals(steps)
	j.CostFinal = totals.CostFinal
	j.PaidTotal = totals.PaidTotal
	j.BalanceDue = totals.BalanceDue

	created, err := u.jobRepo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, nil, err
	}
	for i := range steps {
		if steps[i], err = u.stepRepo.Create(ctx, steps[i]); err != nil {
			return entities.Job{}, nil, err
		}
	}
	return created, steps, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.jobRepo.ListByClientID(ctx, clientID)
}

func (u *JobUseCase) ListSteps(ctx context.Context, jobID string) ([]entities.Step, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.stepRepo.ListByJobID(ctx, jobID)
}

// DeleteJob removes a job and its steps. Rejected while any payment
// references the job; no partial deletion is ever performed.
func (u *JobUseCase) DeleteJob(ctx context.Context, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}

	unlock := u.locks.Lock(jobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if j.ID == "" {
		return ErrJobNotFound
	}

	payments, err := u.paymentRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return ErrReferentialIntegrity
	}

	steps, err := u.stepRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}

	// Debt over the survivors; the deleted job no longer contributes.
	jobs, err := u.jobRepo.ListByClientID(ctx, j.ClientID)
	if err != nil {
		return err
	}
	survivors := jobs[:0]
	for _, sibling := range jobs {
		if sibling.ID != jobID {
			survivors = append(survivors, sibling)
		}
	}
	debt := reconcile.ClientDebt(survivors)

	for _, s := range steps {
		if err := u.stepRepo.Delete(ctx, s.ID); err != nil {
			return err
		}
	}
	if err := u.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}
	return u.saveClientDebt(ctx, j.ClientID, debt)
}

func (u *JobUseCase) AddStep(ctx context.Context, jobID, name string, cost decimal.Decimal) (entities.Step, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Step{}, ErrInvalidJobID
	}
	name = strings.TrimSpace(name)
	if name == "" || cost.IsNegative() {
		return entities.Step{}, ErrInvalidCost
	}

	unlock := u.locks.Lock(jobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Step{}, err
	}
	if j.ID == "" {
		return entities.Step{}, ErrJobNotFound
	}

	steps, err := u.stepRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Step{}, err
	}

	number := 0
	for _, s := range steps {
		if s.StepNumber > number {
			number = s.StepNumber
		}
	}

	now := time.Now().UTC()
	s := entities.Step{
		ID:         uuid.NewString(),
		JobID:      jobID,
		StepNumber: number + 1,
		Name:       name,
		Cost:       cost,
		Balance:    cost,
		Status:     entities.StepStatusPendiente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.stepRepo.Create(ctx, s)
	if err != nil {
		return entities.Step{}, err
	}

	if err := u.cascadeAndPersist(ctx, j, append(steps, created)); err != nil {
		return entities.Step{}, err
	}
	return created, nil
}

// UpdateStepCost edits a step's cost. Paid is untouched; the balance is
// recomputed and the change cascades up to the job and client figures.
func (u *JobUseCase) UpdateStepCost(ctx context.Context, stepID string, cost decimal.Decimal) (entities.Step, error) {
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return entities.Step{}, ErrInvalidStepID
	}
	if cost.IsNegative() {
		return entities.Step{}, ErrInvalidCost
	}

	s, err := u.stepRepo.GetByID(ctx, stepID)
	if err != nil {
		return entities.Step{}, err
	}
	if s.ID == "" {
		return entities.Step{}, ErrStepNotFound
	}

	unlock := u.locks.Lock(s.JobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, s.JobID)
	if err != nil {
		return entities.Step{}, err
	}
	if j.ID == "" {
		return entities.Step{}, ErrJobNotFound
	}

	steps, err := u.stepRepo.ListByJobID(ctx, s.JobID)
	if err != nil {
		return entities.Step{}, err
	}

	var updated entities.Step
	found := false
	for i := range steps {
		if steps[i].ID != stepID {
			continue
		}
		steps[i].Cost = cost
		steps[i].Balance = reconcile.StepBalance(steps[i])
		steps[i].UpdatedAt = time.Now().UTC()
		updated = steps[i]
		found = true
		break
	}
	if !found {
		return entities.Step{}, ErrStepNotFound
	}

	if _, err := u.stepRepo.Save(ctx, updated); err != nil {
		return entities.Step{}, err
	}
	if err := u.cascadeAndPersist(ctx, j, steps); err != nil {
		return entities.Step{}, err
	}
	return updated, nil
}

// DeleteStep removes a step, renumbers the survivors dense from 1 and
// cascades. Rejected while any payment targets the step.
func (u *JobUseCase) DeleteStep(ctx context.Context, stepID string) error {
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return ErrInvalidStepID
	}

	s, err := u.stepRepo.GetByID(ctx, stepID)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrStepNotFound
	}

	payments, err := u.paymentRepo.ListByStepID(ctx, stepID)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return ErrReferentialIntegrity
	}

	unlock := u.locks.Lock(s.JobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, s.JobID)
	if err != nil {
		return err
	}
	if j.ID == "" {
		return ErrJobNotFound
	}

	steps, err := u.stepRepo.ListByJobID(ctx, s.JobID)
	if err != nil {
		return err
	}

	survivors := make([]entities.Step, 0, len(steps))
	for _, sibling := range steps {
		if sibling.ID != stepID {
			survivors = append(survivors, sibling)
		}
	}

	if err := u.stepRepo.Delete(ctx, stepID); err != nil {
		return err
	}
	for i := range survivors {
		if survivors[i].StepNumber == i+1 {
			continue
		}
		survivors[i].StepNumber = i + 1
		survivors[i].UpdatedAt = time.Now().UTC()
		if _, err := u.stepRepo.Save(ctx, survivors[i]); err != nil {
			return err
		}
	}

	return u.cascadeAndPersist(ctx, j, survivors)
}

func (u *JobUseCase) TransitionJobStatus(ctx context.Context, jobID string, newStatus entities.JobStatus) (entities.Job, []string, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, nil, ErrInvalidJobID
	}

	unlock := u.locks.Lock(jobID)
	defer unlock()

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, nil, err
	}
	if j.ID == "" {
		return entities.Job{}, nil, ErrJobNotFound
	}

	steps, err := u.stepRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Job{}, nil, err
	}

	transitioned, warnings, err := reconcile.TransitionJob(j, steps, newStatus)
	if err != nil {
		return j, nil, err
	}

	// Moving in or out of borrador/cancelado changes debt inclusion, so the
	// cascade runs on every status change.
	if err := u.cascadeAndPersist(ctx, transitioned, steps); err != nil {
		return entities.Job{}, nil, err
	}
	return transitioned, warnings, nil
}

func (u *JobUseCase) TransitionStepStatus(ctx context.Context, stepID string, newStatus entities.StepStatus) (entities.Step, []string, error) {
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return entities.Step{}, nil, ErrInvalidStepID
	}

	s, err := u.stepRepo.GetByID(ctx, stepID)
	if err != nil {
		return entities.Step{}, nil, err
	}
	if s.ID == "" {
		return entities.Step{}, nil, ErrStepNotFound
	}

	unlock := u.locks.Lock(s.JobID)
	defer unlock()

	transitioned, warnings, err := reconcile.TransitionStep(s, newStatus)
	if err != nil {
		return s, nil, err
	}
	if _, err := u.stepRepo.Save(ctx, transitioned); err != nil {
		return entities.Step{}, nil, err
	}
	return transitioned, warnings, nil
}

// cascadeAndPersist runs the two-phase cascade over the given steps and
// writes the job and client in that order.
func (u *JobUseCase) cascadeAndPersist(ctx context.Context, j entities.Job, steps []entities.Step) error {
	jobs, err := u.jobRepo.ListByClientID(ctx, j.ClientID)
	if err != nil {
		return err
	}
	updated, debt := reconcile.Cascade(j, steps, jobs)
	if _, err := u.jobRepo.Save(ctx, updated); err != nil {
		return err
	}
	return u.saveClientDebt(ctx, j.ClientID, debt)
}

func (u *JobUseCase) saveClientDebt(ctx context.Context, clientID string, debt decimal.Decimal) error {
	client, err := u.clientRepo.GetByID(ctx, clientID)
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
