package interfaces

import (
	"context"
	"gestion_despacho/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// The reconciliation usecases must be able to:
//   - list all of a client's jobs so the cascade can recompute debt
//   - rewrite a job's derived totals and status through Save

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error)
	Save(ctx context.Context, j entities.Job) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}
