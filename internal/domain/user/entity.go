package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound       = errors.New("usuario no encontrado")
	ErrDuplicateEmail = errors.New("ya existe un usuario con ese email")
	ErrEmptyName      = errors.New("el nombre no puede estar vacío")
	ErrEmptyEmail     = errors.New("el email no puede estar vacío")
)

// Role representa el rol del usuario en el sistema
type Role string

const (
	RoleAdmin      Role = "admin"      // Administrador del negocio
	RoleReseller   Role = "reseller"   // Revendedor
	RoleTechnician Role = "technician" // Técnico de servicio
)

// Status representa el estado del usuario
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User representa un usuario del sistema
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // La contraseña nunca se serializa
	Role        Role       `json:"role"`
	Status      Status     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser crea un nuevo usuario activo
func NewUser(name, email string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now().UTC()
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetPassword configura la contraseña del usuario con hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica si la contraseña provista es válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive verifica si el usuario está activo
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin verifica si el usuario es administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
