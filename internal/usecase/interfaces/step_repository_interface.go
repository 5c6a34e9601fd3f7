package interfaces

import (
	"context"
	"gestion_despacho/internal/domain/entities"
)

// IStepRepository abstracts DynamoDB persistence for Step.
//
// ListByJobID returns the job's steps sorted by StepNumber ascending; the
// payment allocator depends on that order.

type IStepRepository interface {
	Create(ctx context.Context, s entities.Step) (entities.Step, error)
	GetByID(ctx context.Context, id string) (entities.Step, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Step, error)
	Save(ctx context.Context, s entities.Step) (entities.Step, error)
	Delete(ctx context.Context, id string) error
}
