package response

import (
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BudgetVersionResponse struct {
	ID           string          `json:"id"`
	JobID        string          `json:"job_id"`
	Version      int             `json:"version"`
	Status       string          `json:"status"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	ExtraCharges decimal.Decimal `json:"extra_charges"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	RejectReason string          `json:"reject_reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func FromBudgetVersion(v entities.BudgetVersion) BudgetVersionResponse {
	return BudgetVersionResponse{
		ID:           v.ID,
		JobID:        v.JobID,
		Version:      v.Version,
		Status:       string(v.Status),
		Subtotal:     v.Subtotal,
		Discount:     v.Discount,
		ExtraCharges: v.ExtraCharges,
		Tax:          v.Tax,
		Total:        v.Total,
		RejectReason: v.RejectReason,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBudgetVersions(versions []entities.BudgetVersion) []BudgetVersionResponse {
	out := make([]BudgetVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, FromBudgetVersion(v))
	}
	return out
}
