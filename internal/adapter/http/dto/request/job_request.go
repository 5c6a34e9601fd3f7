package request

import (
	"github.com/shopspring/decimal"
)

type StepTemplateRequest struct {
	Name string          `json:"name" binding:"required"`
	Cost decimal.Decimal `json:"cost"`
}

// JobRequest creates a job, optionally cloning a job-type template into the
// job's initial steps. Step order in the payload becomes step_number 1..n.
type JobRequest struct {
	ClientID      string                `json:"client_id" binding:"required"`
	Title         string                `json:"title" binding:"required"`
	Description   string                `json:"description"`
	BudgetInitial decimal.Decimal       `json:"budget_initial"`
	Steps         []StepTemplateRequest `json:"steps"`
}

type StepRequest struct {
	Name string          `json:"name" binding:"required"`
	Cost decimal.Decimal `json:"cost"`
}

type StepCostRequest struct {
	Cost decimal.Decimal `json:"cost"`
}

// StatusRequest carries the target status for job and step transitions.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
