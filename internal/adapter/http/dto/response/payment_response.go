package response

import (
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	PaymentID string          `json:"payment_id"`
	JobID     string          `json:"job_id"`
	StepID    string          `json:"step_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Warnings  []string        `json:"warnings,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.ID,
		JobID:     p.JobID,
		StepID:    p.StepID,
		Amount:    p.Amount,
		Date:      p.Date,
		Method:    string(p.Method),
		Reference: p.Reference,
		CreatedAt: p.CreatedAt,
	}
}

func FromPaymentWithWarnings(p entities.Payment, warnings []string) PaymentResponse {
	out := FromPayment(p)
	out.Warnings = warnings
	return out
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
