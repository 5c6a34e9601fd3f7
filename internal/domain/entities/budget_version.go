package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the approval workflow of a budget version
// (presupuesto).
//
//   - borrador -> enviado -> aprobado
//   - borrador -> aprobado (direct approval)
//   - enviado  -> rechazado (with optional reason)
//
// "aprobado" and "rechazado" are terminal.
type BudgetStatus string

const (
	BudgetStatusBorrador  BudgetStatus = "borrador"
	BudgetStatusEnviado   BudgetStatus = "enviado"
	BudgetStatusAprobado  BudgetStatus = "aprobado"
	BudgetStatusRechazado BudgetStatus = "rechazado"
)

// BudgetVersion is an immutable quote snapshot of a job's step costs.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Version is 1 + max existing version for the job and is never reused, even
// after a deletion. The monetary figures are frozen at creation time and do
// not track later step edits. An approved version cannot be deleted.
type BudgetVersion struct {
	ID           string          `json:"id"`
	JobID        string          `json:"job_id"`
	Version      int             `json:"version"`
	Status       BudgetStatus    `json:"status"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	ExtraCharges decimal.Decimal `json:"extra_charges"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	RejectReason string          `json:"reject_reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
