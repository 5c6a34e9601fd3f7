package request

import (
	"github.com/shopspring/decimal"
)

// BudgetVersionRequest carries the adjustable figures of a budget version;
// the subtotal is always derived from the job's current step costs.
type BudgetVersionRequest struct {
	Discount     decimal.Decimal `json:"discount"`
	ExtraCharges decimal.Decimal `json:"extra_charges"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
}

type BudgetRejectRequest struct {
	Reason string `json:"reason"`
}
