package response

import (
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type JobResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	BudgetInitial  decimal.Decimal `json:"budget_initial"`
	CostFinal      decimal.Decimal `json:"cost_final"`
	PaidTotal      decimal.Decimal `json:"paid_total"`
	BalanceDue     decimal.Decimal `json:"balance_due"`
	Status         string          `json:"status"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// JobWithStepsResponse is returned on creation, when the template steps are
// materialized together with the job.
type JobWithStepsResponse struct {
	JobResponse
	Steps []StepResponse `json:"steps"`
}

// TransitionResponse wraps a transitioned entity with any advisory warnings.
// Warnings never block the operation.
type TransitionResponse struct {
	Job      *JobResponse  `json:"job,omitempty"`
	Step     *StepResponse `json:"step,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		ClientID:       j.ClientID,
		Title:          j.Title,
		Description:    j.Description,
		BudgetInitial:  j.BudgetInitial,
		CostFinal:      j.CostFinal,
		PaidTotal:      j.PaidTotal,
		BalanceDue:     j.BalanceDue,
		Status:         string(j.Status),
		CompletionDate: j.CompletionDate,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func FromJobWithSteps(j entities.Job, steps []entities.Step) JobWithStepsResponse {
	out := JobWithStepsResponse{JobResponse: FromJob(j), Steps: make([]StepResponse, 0, len(steps))}
	for _, s := range steps {
		out.Steps = append(out.Steps, FromStep(s))
	}
	return out
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

func FromJobTransition(j entities.Job, warnings []string) TransitionResponse {
	jr := FromJob(j)
	return TransitionResponse{Job: &jr, Warnings: warnings}
}

func FromStepTransition(s entities.Step, warnings []string) TransitionResponse {
	sr := FromStep(s)
	return TransitionResponse{Step: &sr, Warnings: warnings}
}
