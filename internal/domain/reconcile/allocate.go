package reconcile

import (
	"sort"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Allocate applies a payment amount to a job's steps and returns the updated
// collection plus the unapplied remainder. The input slice is never mutated.
//
// Direct mode (targetStepID non-empty): the full amount lands on that step's
// Paid, even past its balance. Overpayment is not clamped; the caller decides
// whether to warn.
//
// Distributed mode (targetStepID empty): steps absorb the amount in ascending
// StepNumber order, each taking min(remaining, balance) while its balance is
// positive. Whatever no step owed is returned as remainder; callers that want
// to refuse over-collection must check it before committing.
func Allocate(steps []entities.Step, amount decimal.Decimal, targetStepID string) ([]entities.Step, decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, ErrInvalidAmount
	}

	out := make([]entities.Step, len(steps))
	copy(out, steps)

	if targetStepID != "" {
		idx := -1
		for i := range out {
			if out[i].ID == targetStepID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, decimal.Zero, ErrStepNotFound
		}
		out[idx].Paid = out[idx].Paid.Add(amount)
		out[idx].Balance = StepBalance(out[idx])
		return out, decimal.Zero, nil
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return out[order[a]].StepNumber < out[order[b]].StepNumber
	})

	remaining := amount
	for _, i := range order {
		if remaining.IsZero() {
			break
		}
		balance := StepBalance(out[i])
		if balance.LessThanOrEqual(decimal.Zero) {
			continue
		}
		applied := decimal.Min(remaining, balance)
		out[i].Paid = out[i].Paid.Add(applied)
		out[i].Balance = StepBalance(out[i])
		remaining = remaining.Sub(applied)
	}

	return out, remaining, nil
}
