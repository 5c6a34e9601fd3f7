package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestion_despacho/internal/domain/entities"
	"gestion_despacho/internal/domain/reconcile"
	"gestion_despacho/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrClientNotFound      = errors.New("client not found")
	ErrInvalidClientName   = errors.New("invalid client name")
	ErrClientHasActiveJobs = errors.New("client still has active jobs")
)

// IClientUseCase exposes client operations.
//
// DebtTotal is a derived figure: it is written by the reconciliation cascade
// and can be repaired at any time with RecalculateDebt, which is idempotent.

type IClientUseCase interface {
	CreateClient(ctx context.Context, name, email, phone, taxID string) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	DeleteClient(ctx context.Context, id string) error
	RecalculateDebt(ctx context.Context, id string) (entities.Client, error)
}

type ClientUseCase struct {
	clientRepo interfaces.IClientRepository
	jobRepo    interfaces.IJobRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clientRepo interfaces.IClientRepository, jobRepo interfaces.IJobRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, jobRepo: jobRepo}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, name, email, phone, taxID string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		TaxID:     strings.TrimSpace(taxID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.clientRepo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.clientRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

// DeleteClient removes a client. Rejected while any of the client's jobs is
// still open (anything other than completado or cancelado counts as open,
// drafts included).
func (u *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}

	c, err := u.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrClientNotFound
	}

	jobs, err := u.jobRepo.ListByClientID(ctx, id)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		if j.Status != entities.JobStatusCompletado && j.Status != entities.JobStatusCancelado {
			return ErrClientHasActiveJobs
		}
	}

	return u.clientRepo.Delete(ctx, id)
}

// RecalculateDebt recomputes the client's aggregate debt from its jobs and
// persists it. Safe to run repeatedly.
func (u *ClientUseCase) RecalculateDebt(ctx context.Context, id string) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	jobs, err := u.jobRepo.ListByClientID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}

	c.DebtTotal = reconcile.ClientDebt(jobs)
	c.UpdatedAt = time.Now().UTC()
	return u.clientRepo.Save(ctx, c)
}
