package dto

import (
	"time"

	"github.com/movilstock/backoffice/internal/domain/cashbox"
)

// CashBoxRequest representa la petición de alta de caja
type CashBoxRequest struct {
	Name     string          `json:"name" binding:"required"`
	Currency string          `json:"currency" binding:"required"`
	Type     cashbox.BoxType `json:"type" binding:"required"`
}

// CashMovementRequest representa un movimiento manual de caja
type CashMovementRequest struct {
	Type        cashbox.MovementType `json:"type" binding:"required,oneof=credit debit"`
	AmountCents int64                `json:"amount_cents" binding:"required"`
	Description string               `json:"description" binding:"required"`
}

// CashBoxResponse representa la respuesta de caja
type CashBoxResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	Type      cashbox.BoxType `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

// CashMovementResponse representa la respuesta de movimiento de caja
type CashMovementResponse struct {
	ID            string               `json:"id"`
	CashBoxID     string               `json:"cash_box_id"`
	Type          cashbox.MovementType `json:"type"`
	AmountCents   int64                `json:"amount_cents"`
	Currency      string               `json:"currency"`
	Description   string               `json:"description"`
	ReferenceType string               `json:"reference_type,omitempty"`
	ReferenceID   string               `json:"reference_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// CashBoxBalanceResponse representa el saldo de una caja
type CashBoxBalanceResponse struct {
	CashBoxID    string `json:"cash_box_id"`
	Currency     string `json:"currency"`
	BalanceCents int64  `json:"balance_cents"`
}

// ToCashBoxResponse convierte una caja de dominio en su respuesta
func ToCashBoxResponse(b *cashbox.CashBox) CashBoxResponse {
	return CashBoxResponse{
		ID:        b.ID,
		Name:      b.Name,
		Currency:  b.Currency,
		Type:      b.Type,
		CreatedAt: b.CreatedAt,
	}
}

// ToCashMovementResponse convierte un movimiento de caja en su respuesta
func ToCashMovementResponse(m *cashbox.Movement) CashMovementResponse {
	return CashMovementResponse{
		ID:            m.ID,
		CashBoxID:     m.CashBoxID,
		Type:          m.Type,
		AmountCents:   m.AmountCents,
		Currency:      m.Currency,
		Description:   m.Description,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToCashMovementListResponse convierte una lista de movimientos de caja
func ToCashMovementListResponse(movements []*cashbox.Movement) []CashMovementResponse {
	items := make([]CashMovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, ToCashMovementResponse(m))
	}
	return items
}
