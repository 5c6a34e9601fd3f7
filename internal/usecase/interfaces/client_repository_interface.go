package interfaces

import (
	"context"
	"gestion_despacho/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Save performs a full replace; the reconciliation usecases rewrite DebtTotal
// through it after every cascade.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Save(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
