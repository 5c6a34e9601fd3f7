package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest registers a payment against the job in the path. An empty
// step_id means a general payment distributed across the job's steps.
type PaymentRequest struct {
	StepID    string          `json:"step_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Method    string          `json:"method" binding:"required"`
	Reference string          `json:"reference"`
}
