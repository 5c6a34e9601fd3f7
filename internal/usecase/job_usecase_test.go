package usecase

import (
	"context"
	"errors"
	"testing"

	"gestion_despacho/internal/domain/entities"
	mock_interfaces "gestion_despacho/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type jobMocks struct {
	jobRepo     *mock_interfaces.MockIJobRepository
	stepRepo    *mock_interfaces.MockIStepRepository
	paymentRepo *mock_interfaces.MockIPaymentRepository
	clientRepo  *mock_interfaces.MockIClientRepository
}

func newJobUseCase(ctrl *gomock.Controller) (*JobUseCase, jobMocks) {
	m := jobMocks{
		jobRepo:     mock_interfaces.NewMockIJobRepository(ctrl),
		stepRepo:    mock_interfaces.NewMockIStepRepository(ctrl),
		paymentRepo: mock_interfaces.NewMockIPaymentRepository(ctrl),
		clientRepo:  mock_interfaces.NewMockIClientRepository(ctrl),
	}
	return NewJobUseCase(m.jobRepo, m.stepRepo, m.paymentRepo, m.clientRepo, NewJobLocks()), m
}

func TestJobUseCase_CreateJob(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc, _ := newJobUseCase(gomock.NewController(t))
		_, _, err := uc.CreateJob(context.Background(), " ", "Escritura", "", dec("0"), nil)
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)

		_, _, err := uc.CreateJob(context.Background(), "client-1", "Escritura", "", dec("0"), nil)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("template cloned into dense steps with derived totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)

		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
		m.jobRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusBorrador {
					t.Fatalf("expected draft job, got %s", j.Status)
				}
				if !j.CostFinal.Equal(dec("300")) || !j.BalanceDue.Equal(dec("300")) || !j.PaidTotal.IsZero() {
					t.Fatalf("unexpected totals: %+v", j)
				}
				return j, nil
			},
		)
		numbers := []int{}
		m.stepRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Step{})).DoAndReturn(
			func(_ context.Context, s entities.Step) (entities.Step, error) {
				numbers = append(numbers, s.StepNumber)
				if !s.Balance.Equal(s.Cost) || !s.Paid.IsZero() {
					t.Fatalf("unexpected step: %+v", s)
				}
				return s, nil
			},
		).Times(2)

		_, steps, err := uc.CreateJob(context.Background(), "client-1", "Escritura", "compraventa", dec("250"), []StepTemplate{
			{Name: "Redacción", Cost: dec("100")},
			{Name: "Firma", Cost: dec("200")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(steps) != 2 || numbers[0] != 1 || numbers[1] != 2 {
			t.Fatalf("expected dense numbering from 1, got %v", numbers)
		}
	})
}

func TestJobUseCase_DeleteStep(t *testing.T) {
	t.Run("referenced step cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)

		m.stepRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(testStep("s-1", 1, "100", "50"), nil)
		m.paymentRepo.EXPECT().ListByStepID(gomock.Any(), "s-1").Return([]entities.Payment{{ID: "p-1", StepID: "s-1"}}, nil)

		if err := uc.DeleteStep(context.Background(), "s-1"); !errors.Is(err, ErrReferentialIntegrity) {
			t.Fatalf("expected ErrReferentialIntegrity, got %v", err)
		}
	})

	t.Run("survivors renumbered dense and totals cascade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)

		j := testJob()
		steps := []entities.Step{
			testStep("s-1", 1, "100", "0"),
			testStep("s-2", 2, "50", "0"),
			testStep("s-3", 3, "30", "0"),
		}

		m.stepRepo.EXPECT().GetByID(gomock.Any(), "s-2").Return(steps[1], nil)
		m.paymentRepo.EXPECT().ListByStepID(gomock.Any(), "s-2").Return(nil, nil)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.stepRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(steps, nil)
		m.stepRepo.EXPECT().Delete(gomock.Any(), "s-2").Return(nil)
		m.stepRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Step{})).DoAndReturn(
			func(_ context.Context, s entities.Step) (entities.Step, error) {
				if s.ID != "s-3" || s.StepNumber != 2 {
					t.Fatalf("expected s-3 renumbered to 2, got %+v", s)
				}
				return s, nil
			},
		)
		m.jobRepo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{j}, nil)
		m.jobRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Job) (entities.Job, error) {
				if !saved.CostFinal.Equal(dec("130")) {
					t.Fatalf("expected cost 130, got %s", saved.CostFinal)
				}
				return saved, nil
			},
		)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
		m.clientRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil },
		)

		if err := uc.DeleteStep(context.Background(), "s-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_UpdateStepCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newJobUseCase(ctrl)

	j := testJob()
	s := testStep("s-1", 1, "100", "40")

	m.stepRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(s, nil)
	m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
	m.stepRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Step{s}, nil)
	m.stepRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Step{})).DoAndReturn(
		func(_ context.Context, updated entities.Step) (entities.Step, error) {
			// paid stays, balance recomputed against the new cost
			if !updated.Cost.Equal(dec("60")) || !updated.Paid.Equal(dec("40")) || !updated.Balance.Equal(dec("20")) {
				t.Fatalf("unexpected step: %+v", updated)
			}
			return updated, nil
		},
	)
	m.jobRepo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{j}, nil)
	m.jobRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, saved entities.Job) (entities.Job, error) {
			if !saved.CostFinal.Equal(dec("60")) || !saved.BalanceDue.Equal(dec("20")) {
				t.Fatalf("unexpected totals: %+v", saved)
			}
			return saved, nil
		},
	)
	m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
	m.clientRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Client) (entities.Client, error) {
			if !c.DebtTotal.Equal(dec("20")) {
				t.Fatalf("expected debt 20, got %s", c.DebtTotal)
			}
			return c, nil
		},
	)

	if _, err := uc.UpdateStepCost(context.Background(), "s-1", dec("60")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJobUseCase_DeleteJob(t *testing.T) {
	t.Run("job with payments cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(testJob(), nil)
		m.paymentRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Payment{{ID: "p-1", JobID: "job-1"}}, nil)

		if err := uc.DeleteJob(context.Background(), "job-1"); !errors.Is(err, ErrReferentialIntegrity) {
			t.Fatalf("expected ErrReferentialIntegrity, got %v", err)
		}
	})
}

func TestJobUseCase_TransitionJobStatus(t *testing.T) {
	t.Run("completion with debt succeeds and warns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)

		j := testJob()
		j.BalanceDue = dec("500")
		steps := []entities.Step{testStep("s-1", 1, "500", "0")}

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.stepRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(steps, nil)
		m.jobRepo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{j}, nil)
		m.jobRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Job) (entities.Job, error) {
				if saved.Status != entities.JobStatusCompletado || saved.CompletionDate == nil {
					t.Fatalf("unexpected job: %+v", saved)
				}
				return saved, nil
			},
		)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
		m.clientRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				// completed jobs still owe their balance
				if !c.DebtTotal.Equal(dec("500")) {
					t.Fatalf("expected debt 500, got %s", c.DebtTotal)
				}
				return c, nil
			},
		)

		updated, warnings, err := uc.TransitionJobStatus(context.Background(), "job-1", entities.JobStatusCompletado)
		if err != nil {
			t.Fatalf("completion must not be blocked: %v", err)
		}
		if updated.Status != entities.JobStatusCompletado {
			t.Fatalf("expected completado, got %s", updated.Status)
		}
		if len(warnings) == 0 {
			t.Fatalf("expected advisory warnings")
		}
	})

	t.Run("cancelling removes the job from client debt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)

		j := testJob() // en_curso
		steps := []entities.Step{testStep("s-1", 1, "200", "0")}

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.stepRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(steps, nil)
		m.jobRepo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{j}, nil)
		m.jobRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Job) (entities.Job, error) { return saved, nil },
		)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", DebtTotal: dec("200")}, nil)
		m.clientRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if !c.DebtTotal.IsZero() {
					t.Fatalf("expected zero debt after cancellation, got %s", c.DebtTotal)
				}
				return c, nil
			},
		)

		_, _, err := uc.TransitionJobStatus(context.Background(), "job-1", entities.JobStatusCancelado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("undefined transition leaves the job untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newJobUseCase(ctrl)

		j := testJob()
		j.Status = entities.JobStatusCancelado
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.stepRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		_, _, err := uc.TransitionJobStatus(context.Background(), "job-1", entities.JobStatusEnCurso)
		if err == nil {
			t.Fatalf("expected invalid transition error")
		}
	})
}

func TestJobUseCase_TransitionStepStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newJobUseCase(ctrl)

	s := testStep("s-1", 1, "100", "20")
	s.Status = entities.StepStatusEnCurso

	m.stepRepo.EXPECT().GetByID(gomock.Any(), "s-1").Return(s, nil)
	m.stepRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Step{})).DoAndReturn(
		func(_ context.Context, updated entities.Step) (entities.Step, error) {
			if updated.Status != entities.StepStatusCompletado || updated.CompletionDate == nil {
				t.Fatalf("unexpected step: %+v", updated)
			}
			return updated, nil
		},
	)

	_, warnings, err := uc.TransitionStepStatus(context.Background(), "s-1", entities.StepStatusCompletado)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected balance warning, got %v", warnings)
	}
}
