package interfaces

import (
	"context"
	"gestion_despacho/internal/domain/entities"
)

// IBudgetVersionRepository abstracts DynamoDB persistence for BudgetVersion.

type IBudgetVersionRepository interface {
	Create(ctx context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error)
	GetByID(ctx context.Context, id string) (entities.BudgetVersion, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.BudgetVersion, error)
	Save(ctx context.Context, v entities.BudgetVersion) (entities.BudgetVersion, error)
	Delete(ctx context.Context, id string) error
}
