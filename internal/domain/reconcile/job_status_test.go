package reconcile

import (
	"errors"
	"testing"

	"gestion_despacho/internal/domain/entities"
)

func TestTransitionJob(t *testing.T) {
	t.Run("defined chain", func(t *testing.T) {
		cases := []struct {
			from, to entities.JobStatus
		}{
			{entities.JobStatusBorrador, entities.JobStatusPendiente},
			{entities.JobStatusPendiente, entities.JobStatusEnCurso},
			{entities.JobStatusPendiente, entities.JobStatusCancelado},
			{entities.JobStatusEnCurso, entities.JobStatusCancelado},
		}
		for _, tc := range cases {
			j := job("job-1", tc.from, "0")
			updated, warnings, err := TransitionJob(j, nil, tc.to)
			if err != nil {
				t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
			}
			if updated.Status != tc.to {
				t.Fatalf("%s -> %s: status is %s", tc.from, tc.to, updated.Status)
			}
			if len(warnings) != 0 {
				t.Fatalf("%s -> %s: unexpected warnings %v", tc.from, tc.to, warnings)
			}
		}
	})

	t.Run("undefined transitions rejected with entity unchanged", func(t *testing.T) {
		cases := []struct {
			from, to entities.JobStatus
		}{
			{entities.JobStatusBorrador, entities.JobStatusEnCurso},
			{entities.JobStatusBorrador, entities.JobStatusCancelado},
			{entities.JobStatusCancelado, entities.JobStatusPendiente},
			{entities.JobStatusCancelado, entities.JobStatusCompletado},
			{entities.JobStatusCompletado, entities.JobStatusEnCurso},
			{entities.JobStatusEnCurso, entities.JobStatusEnCurso},
		}
		for _, tc := range cases {
			j := job("job-1", tc.from, "0")
			updated, _, err := TransitionJob(j, nil, tc.to)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
			}
			if updated.Status != tc.from {
				t.Fatalf("%s -> %s: entity mutated to %s", tc.from, tc.to, updated.Status)
			}
		}
	})

	t.Run("completion always succeeds with advisory warnings", func(t *testing.T) {
		j := job("job-1", entities.JobStatusEnCurso, "500")
		steps := []entities.Step{
			step("s-1", 1, "400", "0"),
			{ID: "s-2", StepNumber: 2, Status: entities.StepStatusCompletado, Cost: dec("100"), Paid: dec("0"), Balance: dec("100")},
		}

		updated, warnings, err := TransitionJob(j, steps, entities.JobStatusCompletado)
		if err != nil {
			t.Fatalf("completion must not be blocked: %v", err)
		}
		if updated.Status != entities.JobStatusCompletado {
			t.Fatalf("expected completado, got %s", updated.Status)
		}
		if updated.CompletionDate == nil {
			t.Fatalf("expected completion date stamp")
		}
		if len(warnings) != 2 {
			t.Fatalf("expected incomplete-steps and balance warnings, got %v", warnings)
		}
	})

	t.Run("clean completion carries no warnings", func(t *testing.T) {
		j := job("job-1", entities.JobStatusEnCurso, "0")
		steps := []entities.Step{
			{ID: "s-1", StepNumber: 1, Status: entities.StepStatusCompletado},
		}

		_, warnings, err := TransitionJob(j, steps, entities.JobStatusCompletado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", warnings)
		}
	})

	t.Run("completion allowed from draft", func(t *testing.T) {
		j := job("job-1", entities.JobStatusBorrador, "0")
		updated, _, err := TransitionJob(j, nil, entities.JobStatusCompletado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.JobStatusCompletado {
			t.Fatalf("expected completado, got %s", updated.Status)
		}
	})
}

func TestTransitionStep(t *testing.T) {
	t.Run("pendiente to en_curso", func(t *testing.T) {
		s := step("s-1", 1, "100", "0")
		updated, warnings, err := TransitionStep(s, entities.StepStatusEnCurso)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StepStatusEnCurso || len(warnings) != 0 {
			t.Fatalf("unexpected result: %+v %v", updated, warnings)
		}
	})

	t.Run("custom status from en_curso", func(t *testing.T) {
		s := step("s-1", 1, "100", "0")
		s.Status = entities.StepStatusEnCurso
		updated, _, err := TransitionStep(s, "firma_pendiente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != "firma_pendiente" {
			t.Fatalf("expected custom status, got %s", updated.Status)
		}
	})

	t.Run("custom status not reachable from pendiente", func(t *testing.T) {
		s := step("s-1", 1, "100", "0")
		if _, _, err := TransitionStep(s, "firma_pendiente"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("completion with positive balance warns but succeeds", func(t *testing.T) {
		s := step("s-1", 1, "100", "30")
		s.Status = entities.StepStatusEnCurso
		updated, warnings, err := TransitionStep(s, entities.StepStatusCompletado)
		if err != nil {
			t.Fatalf("completion must not be blocked: %v", err)
		}
		if updated.Status != entities.StepStatusCompletado || updated.CompletionDate == nil {
			t.Fatalf("unexpected result: %+v", updated)
		}
		if len(warnings) != 1 {
			t.Fatalf("expected one advisory warning, got %v", warnings)
		}
	})

	t.Run("completed step is terminal", func(t *testing.T) {
		s := step("s-1", 1, "100", "100")
		s.Status = entities.StepStatusCompletado
		if _, _, err := TransitionStep(s, entities.StepStatusEnCurso); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("pendiente cannot be re-entered", func(t *testing.T) {
		s := step("s-1", 1, "100", "0")
		s.Status = entities.StepStatusEnCurso
		if _, _, err := TransitionStep(s, entities.StepStatusPendiente); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
