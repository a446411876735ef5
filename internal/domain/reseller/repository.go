package reseller

import (
	"context"

	"github.com/movilstock/backoffice/internal/domain/user"
)

// Repository define la interfaz para operaciones de repositorio de
// revendedores
type Repository interface {
	// CreateWithUser crea la cuenta de usuario y el perfil de revendedor
	// en una única transacción (el usuario ya viene construido con su
	// hash de contraseña)
	CreateWithUser(ctx context.Context, u *user.User, r *Reseller) error

	// FindByID busca un revendedor por su ID
	FindByID(ctx context.Context, id string) (*Reseller, error)

	// FindByUserID busca un revendedor por el ID de su usuario
	FindByUserID(ctx context.Context, userID string) (*Reseller, error)

	// List lista revendedores con paginación
	List(ctx context.Context, limit, offset int) ([]*Reseller, error)

	// Update actualiza el perfil de un revendedor
	Update(ctx context.Context, r *Reseller) error

	// DeleteCascade elimina al revendedor junto con sus dependencias en
	// una única transacción: desasigna sus equipos, borra consignaciones
	// con sus movimientos, movimientos del libro de deuda, pagos,
	// pedidos de stock y la cuenta de usuario asociada.
	DeleteCascade(ctx context.Context, id string) error

	// Exists verifica si un revendedor existe
	Exists(ctx context.Context, id string) (bool, error)

	// Count cuenta la cantidad de revendedores
	Count(ctx context.Context) (int, error)
}
