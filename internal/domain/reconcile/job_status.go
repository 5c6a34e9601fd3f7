package reconcile

import (
	"fmt"
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// jobTransitions lists the defined non-completion moves. Completing is
// handled separately because any non-terminal job may be completed.
var jobTransitions = map[entities.JobStatus][]entities.JobStatus{
	entities.JobStatusBorrador:  {entities.JobStatusPendiente},
	entities.JobStatusPendiente: {entities.JobStatusEnCurso, entities.JobStatusCancelado},
	entities.JobStatusEnCurso:   {entities.JobStatusCancelado},
}

// TransitionJob moves a job to newStatus, validating the move against the
// job state machine. The returned job is a copy; on error the caller's job
// is unchanged.
//
// Completion is always permitted from a non-terminal status, but two advisory
// checks accompany it: steps not all completed, and a positive balance due.
// Either produces a warning alongside the successful result; neither blocks.
func TransitionJob(job entities.Job, steps []entities.Step, newStatus entities.JobStatus) (entities.Job, []string, error) {
	if newStatus == job.Status {
		return job, nil, ErrInvalidTransition
	}

	var warnings []string

	if newStatus == entities.JobStatusCompletado {
		if job.Status == entities.JobStatusCompletado || job.Status == entities.JobStatusCancelado {
			return job, nil, ErrInvalidTransition
		}
		for _, s := range steps {
			if s.Status != entities.StepStatusCompletado {
				warnings = append(warnings, "no todos los items del trabajo están completados")
				break
			}
		}
		if job.BalanceDue.GreaterThan(decimal.Zero) {
			warnings = append(warnings, fmt.Sprintf("el trabajo se completa con saldo pendiente de %s", job.BalanceDue.String()))
		}
		now := time.Now().UTC()
		job.Status = entities.JobStatusCompletado
		job.CompletionDate = &now
		job.UpdatedAt = now
		return job, warnings, nil
	}

	for _, allowed := range jobTransitions[job.Status] {
		if allowed == newStatus {
			job.Status = newStatus
			job.UpdatedAt = time.Now().UTC()
			return job, warnings, nil
		}
	}
	return job, nil, ErrInvalidTransition
}
