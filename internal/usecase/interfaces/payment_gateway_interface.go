package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Payments with method "online" are charged through it before being recorded;
// the provider's payment id becomes the Payment's reference.
type IPaymentGateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, description string) (providerPaymentID string, providerStatus string, err error)
}
