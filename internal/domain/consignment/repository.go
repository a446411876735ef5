package consignment

import (
	"context"
	"time"

	"github.com/movilstock/backoffice/internal/domain/ledger"
)

// Repository define la interfaz para operaciones de repositorio de
// consignaciones. Las operaciones compuestas (CreateActive, CloseAsSold)
// deben ejecutar todas sus escrituras en una única transacción: un corte
// entre la actualización del equipo y la de la consignación no puede ser
// observable.
type Repository interface {
	// CreateActive crea la consignación con su movimiento "assigned",
	// pasa el equipo a consignado vinculándolo al revendedor y, si
	// corresponde, registra el débito inicial en el libro de deuda.
	// Todo en una única transacción.
	CreateActive(ctx context.Context, c *Consignment, m *Movement, debt *ledger.Entry) error

	// CloseAsSold cierra la consignación como vendida si todavía está
	// activa (actualización condicional): agrega el movimiento "sold",
	// pasa el equipo a vendido y registra el débito por el monto de
	// venta informado. Devuelve ErrNotActive si ya estaba cerrada.
	CloseAsSold(ctx context.Context, id string, soldAt time.Time, m *Movement, saleDebt *ledger.Entry) error

	// FindByID busca una consignación por su ID con sus movimientos
	FindByID(ctx context.Context, id string) (*Consignment, error)

	// FindActiveByDevice devuelve la consignación activa de un equipo,
	// o nil si no tiene ninguna
	FindActiveByDevice(ctx context.Context, deviceID string) (*Consignment, error)

	// FindByReseller lista las consignaciones de un revendedor
	FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*Consignment, error)

	// List lista consignaciones con paginación
	List(ctx context.Context, limit, offset int) ([]*Consignment, error)
}
