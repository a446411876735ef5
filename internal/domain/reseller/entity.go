package reseller

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("revendedor no encontrado")
	ErrEmptyUserID = errors.New("el revendedor debe tener un usuario asociado")
	ErrEmptyName   = errors.New("el nombre no puede estar vacío")
)

// Reseller representa el perfil comercial de un revendedor. Cada
// revendedor tiene exactamente una cuenta de usuario asociada.
type Reseller struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Segment   string    `json:"segment,omitempty"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReseller crea un perfil de revendedor asociado a un usuario
func NewReseller(userID, name string) (*Reseller, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now().UTC()
	return &Reseller{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
