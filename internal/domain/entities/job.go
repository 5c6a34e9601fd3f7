package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus represents the lifecycle of a job (trabajo).
//
// Domain notes:
//   - Jobs in "borrador" or "cancelado" never contribute to the client's
//     aggregate debt.
//   - "completado" and "cancelado" are terminal.
type JobStatus string

const (
	JobStatusBorrador   JobStatus = "borrador"
	JobStatusPendiente  JobStatus = "pendiente"
	JobStatusEnCurso    JobStatus = "en_curso"
	JobStatusCompletado JobStatus = "completado"
	JobStatusCancelado  JobStatus = "cancelado"
)

// Job is a unit of professional work for a client, composed of ordered steps.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Monetary representation:
//   - CostFinal, PaidTotal and BalanceDue are derived from the job's steps by
//     the reconciliation cascade; BalanceDue == CostFinal - PaidTotal always
//     holds after a recalculation. BudgetInitial is the figure quoted when the
//     job was opened and is never recomputed.
type Job struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	BudgetInitial decimal.Decimal `json:"budget_initial"`
	CostFinal     decimal.Decimal `json:"cost_final"`
	PaidTotal     decimal.Decimal `json:"paid_total"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	Status        JobStatus       `json:"status"`

	// CompletionDate is stamped when the job reaches "completado".
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	// LastBudgetVersion is the highest budget version ever created for this
	// job. Version numbers are never reused, so deleting the latest version
	// must not free its number; this high-water mark survives deletions.
	LastBudgetVersion int `json:"last_budget_version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
