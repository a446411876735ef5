package stockrequest

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("pedido de stock no encontrado")
	ErrEmptyModel      = errors.New("el modelo no puede estar vacío")
	ErrInvalidQuantity = errors.New("la cantidad debe ser mayor a cero")
	ErrInvalidStatus   = errors.New("estado de pedido inválido")
)

// Status representa el estado del pedido de stock
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// StockRequest representa un pedido de mercadería de un revendedor
type StockRequest struct {
	ID         string    `json:"id"`
	ResellerID string    `json:"reseller_id"`
	Model      string    `json:"model"`
	Quantity   int       `json:"quantity"`
	Note       string    `json:"note,omitempty"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// New crea un pedido de stock pendiente
func New(resellerID, model string, quantity int, note string) (*StockRequest, error) {
	if model == "" {
		return nil, ErrEmptyModel
	}

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	return &StockRequest{
		ID:         uuid.New().String(),
		ResellerID: resellerID,
		Model:      model,
		Quantity:   quantity,
		Note:       note,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Valid verifica que el estado sea uno de los conocidos
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
