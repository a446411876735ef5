package user

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de usuarios
type Repository interface {
	// Create crea un nuevo usuario
	Create(ctx context.Context, u *User) error

	// FindByID busca un usuario por su ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca un usuario por su email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByRole lista los usuarios con un rol determinado
	FindByRole(ctx context.Context, role Role) ([]*User, error)

	// Update actualiza los datos de un usuario existente
	Update(ctx context.Context, u *User) error

	// UpdateLastLogin registra el último acceso del usuario
	UpdateLastLogin(ctx context.Context, id string) error

	// Delete elimina un usuario
	Delete(ctx context.Context, id string) error

	// ExistsByEmail verifica si ya existe un usuario con ese email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
