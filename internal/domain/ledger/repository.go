package ledger

import (
	"context"
)

// Repository define la interfaz para el libro de deuda de revendedores.
// El libro es de solo-agregado: no existen operaciones de actualización
// ni de borrado individual de movimientos.
type Repository interface {
	// Add agrega un movimiento al libro
	Add(ctx context.Context, e *Entry) error

	// FindByReseller lista los movimientos de un revendedor, del más
	// reciente al más antiguo
	FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*Entry, error)

	// BalanceCents calcula el saldo actual de un revendedor. Un
	// revendedor sin movimientos tiene saldo cero, no es un error.
	BalanceCents(ctx context.Context, resellerID string) (int64, error)

	// CountByReseller cuenta los movimientos de un revendedor
	CountByReseller(ctx context.Context, resellerID string) (int, error)
}
