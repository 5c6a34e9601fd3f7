package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates how a payment (pago) was received.
//
// "online" payments are charged through the configured payment gateway before
// being recorded; the provider's payment id then becomes the Reference.
type PaymentMethod string

const (
	PaymentMethodEfectivo      PaymentMethod = "efectivo"
	PaymentMethodTransferencia PaymentMethod = "transferencia"
	PaymentMethodCheque        PaymentMethod = "cheque"
	PaymentMethodOnline        PaymentMethod = "online"
)

// Payment is a monetary receipt against a job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// StepID empty means a general payment, distributed across the job's steps by
// the allocator at registration time. Amount, Date, Method and Reference are
// immutable once recorded; the only way to undo a payment is to delete it,
// which reverses its effect on the targeted step.
type Payment struct {
	ID        string          `json:"id"`
	JobID     string          `json:"job_id"`
	StepID    string          `json:"step_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Method    PaymentMethod   `json:"method"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
