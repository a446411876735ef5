package dto

import (
	"time"

	"github.com/movilstock/backoffice/internal/domain/stockrequest"
)

// StockRequestRequest representa la petición de pedido de stock
type StockRequestRequest struct {
	Model    string `json:"model" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Note     string `json:"note"`
}

// StockRequestStatusRequest representa el cambio de estado de un pedido
type StockRequestStatusRequest struct {
	Status stockrequest.Status `json:"status" binding:"required,oneof=pending approved rejected"`
}

// StockRequestResponse representa la respuesta de pedido de stock
type StockRequestResponse struct {
	ID         string              `json:"id"`
	ResellerID string              `json:"reseller_id"`
	Model      string              `json:"model"`
	Quantity   int                 `json:"quantity"`
	Note       string              `json:"note,omitempty"`
	Status     stockrequest.Status `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ToStockRequestResponse convierte un pedido de dominio en su respuesta
func ToStockRequestResponse(s *stockrequest.StockRequest) StockRequestResponse {
	return StockRequestResponse{
		ID:         s.ID,
		ResellerID: s.ResellerID,
		Model:      s.Model,
		Quantity:   s.Quantity,
		Note:       s.Note,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToStockRequestListResponse convierte una lista de pedidos de stock
func ToStockRequestListResponse(requests []*stockrequest.StockRequest) []StockRequestResponse {
	items := make([]StockRequestResponse, 0, len(requests))
	for _, s := range requests {
		items = append(items, ToStockRequestResponse(s))
	}
	return items
}
