package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is a customer of the practice.
//
// Storage model (DynamoDB):
//   - PK: id
//
// DebtTotal is derived, never authoritative: it is recomputed from the
// client's jobs by the reconciliation cascade and must not be hand-edited.
type Client struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	TaxID     string          `json:"tax_id"`
	DebtTotal decimal.Decimal `json:"debt_total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
