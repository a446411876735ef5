package device

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de equipos
type Repository interface {
	// Create crea un nuevo equipo
	Create(ctx context.Context, d *Device) error

	// FindByID busca un equipo por su ID
	FindByID(ctx context.Context, id string) (*Device, error)

	// FindByIMEI busca un equipo por su IMEI
	FindByIMEI(ctx context.Context, imei string) (*Device, error)

	// List lista equipos con paginación
	List(ctx context.Context, limit, offset int) ([]*Device, error)

	// FindByState lista equipos por estado
	FindByState(ctx context.Context, state string, limit, offset int) ([]*Device, error)

	// FindByReseller lista los equipos asignados a un revendedor
	FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*Device, error)

	// Update actualiza los datos de un equipo existente
	Update(ctx context.Context, d *Device) error

	// UpdateState actualiza solo el estado de un equipo
	UpdateState(ctx context.Context, id, state string) error

	// ExistsByIMEI verifica si ya existe un equipo con ese IMEI
	ExistsByIMEI(ctx context.Context, imei string) (bool, error)

	// Count cuenta la cantidad total de equipos
	Count(ctx context.Context) (int, error)
}

// StatusRepository define la interfaz para el catálogo de estados
type StatusRepository interface {
	// Create crea una nueva fila del catálogo
	Create(ctx context.Context, s *Status) error

	// FindByKey busca un estado por su clave; devuelve nil si no existe
	FindByKey(ctx context.Context, key string) (*Status, error)

	// List lista el catálogo completo ordenado por sort_order
	List(ctx context.Context) ([]*Status, error)

	// Update actualiza una fila del catálogo
	Update(ctx context.Context, s *Status) error
}
