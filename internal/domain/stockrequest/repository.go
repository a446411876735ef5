package stockrequest

import (
	"context"
)

// Repository define la interfaz para operaciones de pedidos de stock
type Repository interface {
	// Create crea un pedido de stock
	Create(ctx context.Context, s *StockRequest) error

	// FindByID busca un pedido por su ID
	FindByID(ctx context.Context, id string) (*StockRequest, error)

	// FindByReseller lista los pedidos de un revendedor
	FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*StockRequest, error)

	// List lista pedidos con paginación
	List(ctx context.Context, limit, offset int) ([]*StockRequest, error)

	// UpdateStatus actualiza el estado de un pedido
	UpdateStatus(ctx context.Context, id string, status Status) error
}
