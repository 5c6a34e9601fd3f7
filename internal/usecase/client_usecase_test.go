package usecase

import (
	"context"
	"errors"
	"testing"

	"gestion_despacho/internal/domain/entities"
	mock_interfaces "gestion_despacho/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newClientUseCase(ctrl *gomock.Controller) (*ClientUseCase, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIJobRepository) {
	clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
	jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
	return NewClientUseCase(clientRepo, jobRepo), clientRepo, jobRepo
}

func TestClientUseCase_CreateClient(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		uc, _, _ := newClientUseCase(gomock.NewController(t))
		_, err := uc.CreateClient(context.Background(), "   ", "", "", "")
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("fields trimmed and debt starts at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clientRepo, _ := newClientUseCase(ctrl)

		clientRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Name != "María Pérez" || c.Email != "maria@example.com" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.ID == "" || !c.DebtTotal.IsZero() {
					t.Fatalf("unexpected client: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.CreateClient(context.Background(), " María Pérez ", " maria@example.com ", "", "20-12345678-9"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, clientRepo, _ := newClientUseCase(ctrl)

	clientRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, nil)

	if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientUseCase_DeleteClient(t *testing.T) {
	t.Run("open jobs block deletion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clientRepo, jobRepo := newClientUseCase(ctrl)

		clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
		jobRepo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{
			{ID: "job-1", Status: entities.JobStatusCompletado},
			{ID: "job-2", Status: entities.JobStatusBorrador},
		}, nil)

		if err := uc.DeleteClient(context.Background(), "client-1"); !errors.Is(err, ErrClientHasActiveJobs) {
			t.Fatalf("expected ErrClientHasActiveJobs, got %v", err)
		}
	})

	t.Run("all jobs closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, clientRepo, jobRepo := newClientUseCase(ctrl)

		clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
		jobRepo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{
			{ID: "job-1", Status: entities.JobStatusCompletado},
			{ID: "job-2", Status: entities.JobStatusCancelado},
		}, nil)
		clientRepo.EXPECT().Delete(gomock.Any(), "client-1").Return(nil)

		if err := uc.DeleteClient(context.Background(), "client-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_RecalculateDebt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, clientRepo, jobRepo := newClientUseCase(ctrl)

	clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", DebtTotal: dec("999")}, nil)
	jobRepo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{
		{ID: "job-1", Status: entities.JobStatusEnCurso, BalanceDue: dec("120")},
		{ID: "job-2", Status: entities.JobStatusCompletado, BalanceDue: dec("30")},
		{ID: "job-3", Status: entities.JobStatusBorrador, BalanceDue: dec("500")},
		{ID: "job-4", Status: entities.JobStatusCancelado, BalanceDue: dec("70")},
	}, nil)
	clientRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil },
	)

	c, err := uc.RecalculateDebt(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// drafts and cancelled jobs never count towards the debt
	if !c.DebtTotal.Equal(dec("150")) {
		t.Fatalf("expected debt 150, got %s", c.DebtTotal)
	}
}
