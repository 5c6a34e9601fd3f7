// Package reconcile implements the financial reconciliation engine: the pure
// arithmetic, payment allocation, cascade recalculation and status machines
// that keep a job's cost/paid/balance figures, its steps' balances and the
// owning client's aggregate debt mutually consistent.
//
// Every function in this package is a total, synchronous computation over the
// collections it is handed. Nothing here touches persistence or retains
// references: callers receive fresh copies and own the commit boundary.
package reconcile

import (
	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Totals are a job's derived figures, recomputed from its steps.
type Totals struct {
	CostFinal  decimal.Decimal
	PaidTotal  decimal.Decimal
	BalanceDue decimal.Decimal
}

// StepBalance returns cost - paid for a single step.
func StepBalance(s entities.Step) decimal.Decimal {
	return s.Cost.Sub(s.Paid)
}

// JobTotals aggregates a job's steps. An empty collection yields all-zero
// totals.
func JobTotals(steps []entities.Step) Totals {
	var cost, paid decimal.Decimal
	for _, s := range steps {
		cost = cost.Add(s.Cost)
		paid = paid.Add(s.Paid)
	}
	return Totals{
		CostFinal:  cost,
		PaidTotal:  paid,
		BalanceDue: cost.Sub(paid),
	}
}
