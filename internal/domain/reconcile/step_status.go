package reconcile

import (
	"fmt"
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// TransitionStep moves a step along its chain:
//
//	pendiente -> en_curso -> <custom intermediates> -> completado
//
// Custom intermediate statuses are any values outside the three well-known
// ones; they may only be entered from en_curso or another custom status.
// Completing is permitted from any non-completed status and stamps
// CompletionDate; a positive balance at completion yields an advisory
// warning, never a rejection.
func TransitionStep(step entities.Step, newStatus entities.StepStatus) (entities.Step, []string, error) {
	if newStatus == step.Status {
		return step, nil, ErrInvalidTransition
	}
	if step.Status == entities.StepStatusCompletado {
		return step, nil, ErrInvalidTransition
	}

	now := time.Now().UTC()

	switch newStatus {
	case entities.StepStatusPendiente:
		// pendiente is the initial status only; it cannot be re-entered.
		return step, nil, ErrInvalidTransition
	case entities.StepStatusEnCurso:
		if step.Status != entities.StepStatusPendiente {
			return step, nil, ErrInvalidTransition
		}
	case entities.StepStatusCompletado:
		var warnings []string
		if StepBalance(step).GreaterThan(decimal.Zero) {
			warnings = append(warnings, fmt.Sprintf("el item %d se completa con saldo pendiente de %s", step.StepNumber, StepBalance(step).String()))
		}
		step.Status = entities.StepStatusCompletado
		step.CompletionDate = &now
		step.UpdatedAt = now
		return step, warnings, nil
	default:
		if step.Status == entities.StepStatusPendiente {
			return step, nil, ErrInvalidTransition
		}
	}

	step.Status = newStatus
	step.UpdatedAt = now
	return step, nil, nil
}
