package device

import (
	"errors"
	"time"
)

var (
	ErrEmptyStatusKey  = errors.New("la clave del estado no puede estar vacía")
	ErrEmptyStatusName = errors.New("el nombre del estado no puede estar vacío")
)

// Status es una fila del catálogo administrable de estados de equipo.
// Device.State es una clave blanda contra este catálogo: se valida al
// escribir (debe existir y estar activa), no por restricción de esquema.
type Status struct {
	Key                  string    `json:"key"`
	Name                 string    `json:"name"`
	Sector               string    `json:"sector,omitempty"`
	IsSellable           bool      `json:"is_sellable"`
	IsVisibleForReseller bool      `json:"is_visible_for_reseller"`
	SortOrder            int       `json:"sort_order"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewStatus crea una nueva fila del catálogo de estados
func NewStatus(key, name, sector string, isSellable, isVisibleForReseller bool, sortOrder int) (*Status, error) {
	if key == "" {
		return nil, ErrEmptyStatusKey
	}

	if name == "" {
		return nil, ErrEmptyStatusName
	}

	now := time.Now().UTC()
	return &Status{
		Key:                  key,
		Name:                 name,
		Sector:               sector,
		IsSellable:           isSellable,
		IsVisibleForReseller: isVisibleForReseller,
		SortOrder:            sortOrder,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}
