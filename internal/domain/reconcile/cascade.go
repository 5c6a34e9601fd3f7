package reconcile

import (
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Cascade restores consistency after a step or payment mutation, in one call
// with a strict phase order: first the job's totals are recomputed from its
// current steps, then the client's debt is recomputed over all of the
// client's jobs with the freshly updated job standing in for its stale copy.
//
// clientJobs is the full set of jobs belonging to the job's client; the entry
// matching job.ID (if present) is replaced by the recomputed job before the
// debt phase reads it. Running Cascade twice on unchanged inputs yields
// identical outputs.
func Cascade(job entities.Job, steps []entities.Step, clientJobs []entities.Job) (entities.Job, decimal.Decimal) {
	totals := JobTotals(steps)
	job.CostFinal = totals.CostFinal
	job.PaidTotal = totals.PaidTotal
	job.BalanceDue = totals.BalanceDue
	job.UpdatedAt = time.Now().UTC()

	jobs := make([]entities.Job, 0, len(clientJobs)+1)
	replaced := false
	for _, j := range clientJobs {
		if j.ID == job.ID {
			jobs = append(jobs, job)
			replaced = true
			continue
		}
		jobs = append(jobs, j)
	}
	if !replaced {
		jobs = append(jobs, job)
	}

	return job, ClientDebt(jobs)
}

// ClientDebt sums BalanceDue over the given jobs, excluding drafts and
// cancelled jobs.
func ClientDebt(jobs []entities.Job) decimal.Decimal {
	var debt decimal.Decimal
	for _, j := range jobs {
		if j.Status == entities.JobStatusBorrador || j.Status == entities.JobStatusCancelado {
			continue
		}
		debt = debt.Add(j.BalanceDue)
	}
	return debt
}
