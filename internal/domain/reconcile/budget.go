package reconcile

import (
	"strings"
	"time"

	"gestion_despacho/internal/domain/entities"
)

var budgetTransitions = map[entities.BudgetStatus][]entities.BudgetStatus{
	entities.BudgetStatusBorrador: {entities.BudgetStatusEnviado, entities.BudgetStatusAprobado},
	entities.BudgetStatusEnviado:  {entities.BudgetStatusAprobado, entities.BudgetStatusRechazado},
}

// NextVersion returns 1 + the highest version ever issued for the job.
// highWater is the job's recorded maximum (entities.Job.LastBudgetVersion),
// which outlives deleted versions; the surviving versions are consulted as
// well so a stale high-water mark can never hand out a duplicate.
func NextVersion(existing []entities.BudgetVersion, highWater int) int {
	max := highWater
	for _, v := range existing {
		if v.Version > max {
			max = v.Version
		}
	}
	return max + 1
}

// TransitionBudget moves a budget version through its approval workflow.
// A rejection may carry a reason; reasons on any other transition are
// ignored. Undefined moves (including anything out of a terminal status)
// return the version unchanged with ErrInvalidTransition.
func TransitionBudget(v entities.BudgetVersion, newStatus entities.BudgetStatus, reason string) (entities.BudgetVersion, error) {
	for _, allowed := range budgetTransitions[v.Status] {
		if allowed != newStatus {
			continue
		}
		v.Status = newStatus
		if newStatus == entities.BudgetStatusRechazado {
			v.RejectReason = strings.TrimSpace(reason)
		}
		v.UpdatedAt = time.Now().UTC()
		return v, nil
	}
	return v, ErrInvalidTransition
}

// CanDeleteBudget reports whether a budget version may be deleted. Approved
// versions are immutable; drafts, sent and rejected versions may go.
func CanDeleteBudget(v entities.BudgetVersion) error {
	if v.Status == entities.BudgetStatusAprobado {
		return ErrImmutableRecord
	}
	return nil
}
