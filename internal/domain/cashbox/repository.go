package cashbox

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de cajas.
// No existe una primitiva de transferencia entre cajas: una transferencia
// son dos movimientos independientes creados por quien llama.
type Repository interface {
	// Create crea una nueva caja
	Create(ctx context.Context, b *CashBox) error

	// FindByID busca una caja por su ID
	FindByID(ctx context.Context, id string) (*CashBox, error)

	// List lista todas las cajas
	List(ctx context.Context) ([]*CashBox, error)

	// AddMovement agrega un movimiento al registro de una caja
	AddMovement(ctx context.Context, m *Movement) error

	// FindMovements lista los movimientos de una caja, del más reciente
	// al más antiguo
	FindMovements(ctx context.Context, cashBoxID string, limit, offset int) ([]*Movement, error)

	// BalanceCents calcula el saldo actual de una caja
	BalanceCents(ctx context.Context, cashBoxID string) (int64, error)

	// Exists verifica si una caja existe
	Exists(ctx context.Context, id string) (bool, error)
}
