package response

import (
	"time"

	"gestion_despacho/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ClientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	TaxID     string          `json:"tax_id"`
	DebtTotal decimal.Decimal `json:"debt_total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		TaxID:     c.TaxID,
		DebtTotal: c.DebtTotal,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
