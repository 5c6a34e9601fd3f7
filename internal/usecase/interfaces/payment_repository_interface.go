package interfaces

import (
	"context"
	"gestion_despacho/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// ListByStepID backs the referential-integrity guard: a step with payments
// on record cannot be deleted.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error)
	ListByStepID(ctx context.Context, stepID string) ([]entities.Payment, error)
	Delete(ctx context.Context, id string) error
}
