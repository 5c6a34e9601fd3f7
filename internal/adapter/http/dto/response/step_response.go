package response

import (
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type StepResponse struct {
	ID             string          `json:"id"`
	JobID          string          `json:"job_id"`
	StepNumber     int             `json:"step_number"`
	Name           string          `json:"name"`
	Cost           decimal.Decimal `json:"cost"`
	Paid           decimal.Decimal `json:"paid"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromStep(s entities.Step) StepResponse {
	return StepResponse{
		ID:             s.ID,
		JobID:          s.JobID,
		StepNumber:     s.StepNumber,
		Name:           s.Name,
		Cost:           s.Cost,
		Paid:           s.Paid,
		Balance:        s.Balance,
		Status:         string(s.Status),
		CompletionDate: s.CompletionDate,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromSteps(steps []entities.Step) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, FromStep(s))
	}
	return out
}
