package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StepStatus represents the lifecycle of a billable step (item).
//
// Besides the three well-known values, a practice may configure custom
// intermediate statuses (free-form strings) that sit between "en_curso" and
// "completado". The transition rules live in the reconcile package.
type StepStatus string

const (
	StepStatusPendiente  StepStatus = "pendiente"
	StepStatusEnCurso    StepStatus = "en_curso"
	StepStatusCompletado StepStatus = "completado"
)

// Step is a billable sub-task of a job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// StepNumber is unique per job and dense from 1; deleting a step renumbers
// the survivors. Paid is only ever moved by the payment allocator: editing
// Cost recomputes Balance keeping Paid fixed, and Balance == Cost - Paid
// always holds after a recalculation.
type Step struct {
	ID             string          `json:"id"`
	JobID          string          `json:"job_id"`
	StepNumber     int             `json:"step_number"`
	Name           string          `json:"name"`
	Cost           decimal.Decimal `json:"cost"`
	Paid           decimal.Decimal `json:"paid"`
	Balance        decimal.Decimal `json:"balance"`
	Status         StepStatus      `json:"status"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
