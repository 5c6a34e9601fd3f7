package usecase

import (
	"context"
	"errors"
	"testing"

	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/domain/reconcile"
	mock_interfaces "gestion_despacho/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type budgetMocks struct {
	budgetRepo *mock_interfaces.MockIBudgetVersionRepository
	jobRepo    *mock_interfaces.MockIJobRepository
	stepRepo   *mock_interfaces.MockIStepRepository
}

func newBudgetVersionUseCase(ctrl *gomock.Controller) (*BudgetVersionUseCase, budgetMocks) {
	m := budgetMocks{
		budgetRepo: mock_interfaces.NewMockIBudgetVersionRepository(ctrl),
		jobRepo:    mock_interfaces.NewMockIJobRepository(ctrl),
		stepRepo:   mock_interfaces.NewMockIStepRepository(ctrl),
	}
	return NewBudgetVersionUseCase(m.budgetRepo, m.jobRepo, m.stepRepo, NewJobLocks()), m
}

func testBudget(id string, version int, status entities.BudgetStatus) entities.BudgetVersion {
	return entities.BudgetVersion{ID: id, JobID: "job-1", Version: version, Status: status}
}

func TestBudgetVersionUseCase_CreateVersion(t *testing.T) {
	t.Run("negative figures rejected", func(t *testing.T) {
		uc, _ := newBudgetVersionUseCase(gomock.NewController(t))
		_, err := uc.CreateVersion(context.Background(), "job-1", BudgetFigures{Discount: dec("-1")})
		if !errors.Is(err, ErrInvalidBudgetFigures) {
			t.Fatalf("expected ErrInvalidBudgetFigures, got %v", err)
		}
	})

	t.Run("figures derived from current steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetVersionUseCase(ctrl)

		j := testJob()
		steps := []entities.Step{
			testStep("s-1", 1, "100", "0"),
			testStep("s-2", 2, "50", "0"),
		}

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.stepRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(steps, nil)
		m.budgetRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)
		m.budgetRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetVersion{})).DoAndReturn(
			func(_ context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error) {
				if v.Version != 1 || v.Status != entities.BudgetStatusBorrador {
					t.Fatalf("unexpected version: %+v", v)
				}
				if !v.Subtotal.Equal(dec("150")) {
					t.Fatalf("expected subtotal 150, got %s", v.Subtotal)
				}
				// (150 - 10 + 20) * 0.21 = 33.60, total 193.60
				if !v.Tax.Equal(dec("33.6")) || !v.Total.Equal(dec("193.6")) {
					t.Fatalf("unexpected tax %s / total %s", v.Tax, v.Total)
				}
				return v, nil
			},
		)
		m.jobRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Job) (entities.Job, error) {
				if saved.LastBudgetVersion != 1 {
					t.Fatalf("expected high-water mark 1, got %d", saved.LastBudgetVersion)
				}
				return saved, nil
			},
		)

		_, err := uc.CreateVersion(context.Background(), "job-1", BudgetFigures{
			Discount:     dec("10"),
			ExtraCharges: dec("20"),
			TaxRate:      dec("0.21"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleted latest version does not free its number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetVersionUseCase(ctrl)

		j := testJob()
		j.LastBudgetVersion = 3

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.stepRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)
		// versions 2 and 3 were deleted, only v1 remains
		m.budgetRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.BudgetVersion{
			testBudget("b-1", 1, entities.BudgetStatusRechazado),
		}, nil)
		m.budgetRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error) {
				if v.Version != 4 {
					t.Fatalf("expected version 4, got %d", v.Version)
				}
				return v, nil
			},
		)
		m.jobRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Job) (entities.Job, error) { return saved, nil },
		)

		if _, err := uc.CreateVersion(context.Background(), "job-1", BudgetFigures{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetVersionUseCase_Transitions(t *testing.T) {
	t.Run("send then approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetVersionUseCase(ctrl)

		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(testBudget("b-1", 1, entities.BudgetStatusBorrador), nil)
		m.budgetRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error) { return v, nil },
		)
		sent, err := uc.Send(context.Background(), "b-1")
		if err != nil || sent.Status != entities.BudgetStatusEnviado {
			t.Fatalf("send: got %v / %v", sent.Status, err)
		}

		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(sent, nil)
		m.budgetRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error) { return v, nil },
		)
		approved, err := uc.Approve(context.Background(), "b-1")
		if err != nil || approved.Status != entities.BudgetStatusAprobado {
			t.Fatalf("approve: got %v / %v", approved.Status, err)
		}
	})

	t.Run("reject records the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetVersionUseCase(ctrl)

		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(testBudget("b-1", 1, entities.BudgetStatusEnviado), nil)
		m.budgetRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error) { return v, nil },
		)

		rejected, err := uc.Reject(context.Background(), "b-1", "  monto excesivo ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rejected.Status != entities.BudgetStatusRechazado || rejected.RejectReason != "monto excesivo" {
			t.Fatalf("unexpected version: %+v", rejected)
		}
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetVersionUseCase(ctrl)

		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(testBudget("b-1", 1, entities.BudgetStatusRechazado), nil)

		if _, err := uc.Approve(context.Background(), "b-1"); !errors.Is(err, reconcile.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestBudgetVersionUseCase_DeleteVersion(t *testing.T) {
	t.Run("approved version is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetVersionUseCase(ctrl)

		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(testBudget("b-1", 2, entities.BudgetStatusAprobado), nil)

		if err := uc.DeleteVersion(context.Background(), "b-1"); !errors.Is(err, reconcile.ErrImmutableRecord) {
			t.Fatalf("expected ErrImmutableRecord, got %v", err)
		}
	})

	t.Run("rejected version can go", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetVersionUseCase(ctrl)

		m.budgetRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(testBudget("b-1", 2, entities.BudgetStatusRechazado), nil)
		m.budgetRepo.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		if err := uc.DeleteVersion(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
