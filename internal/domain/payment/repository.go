package payment

import (
	"context"
	"time"

	"github.com/movilstock/backoffice/internal/domain/cashbox"
	"github.com/movilstock/backoffice/internal/domain/ledger"
)

// Repository define la interfaz para operaciones de repositorio de pagos.
// Confirm y Reject aplican el cambio de estado con una actualización
// condicional (status todavía pendiente): dos confirmaciones concurrentes
// sobre el mismo pago no pueden acreditar la deuda dos veces.
type Repository interface {
	// Create inserta un pago en estado reported_pending
	Create(ctx context.Context, p *Payment) error

	// FindByID busca un pago por su ID
	FindByID(ctx context.Context, id string) (*Payment, error)

	// Confirm confirma un pago pendiente y, en la misma transacción,
	// registra el crédito en el libro de deuda y el movimiento de caja
	// si hay una caja resuelta. Devuelve ErrAlreadyProcessed si el pago
	// ya no estaba pendiente.
	Confirm(ctx context.Context, id, reviewedByID string, reviewedAt time.Time, cashBoxID *string, credit *ledger.Entry, boxMovement *cashbox.Movement) (*Payment, error)

	// Reject rechaza un pago pendiente sin efectos sobre el libro ni la
	// caja. Devuelve ErrAlreadyProcessed si ya no estaba pendiente.
	Reject(ctx context.Context, id, reviewedByID string, reviewedAt time.Time) (*Payment, error)

	// FindByReseller lista los pagos de un revendedor
	FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*Payment, error)

	// FindByStatus lista pagos por estado
	FindByStatus(ctx context.Context, status Status, limit, offset int) ([]*Payment, error)

	// List lista pagos con paginación
	List(ctx context.Context, limit, offset int) ([]*Payment, error)
}
