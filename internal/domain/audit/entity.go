package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record es una entrada inmutable del registro de auditoría. Se escribe
// después de confirmar la operación principal y su falla nunca se propaga
// a quien llama.
type Record struct {
	ID         string         `json:"id"`
	ActorID    *string        `json:"actor_id,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Meta       map[string]any `json:"meta,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewRecord crea una entrada de auditoría
func NewRecord(actorID *string, action, entityType, entityID string, meta map[string]any) *Record {
	return &Record{
		ID:         uuid.New().String(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Meta:       meta,
		CreatedAt:  time.Now().UTC(),
	}
}

// Repository define la interfaz para el registro de auditoría
type Repository interface {
	// Create agrega una entrada al registro
	Create(ctx context.Context, r *Record) error

	// FindByEntity lista las entradas de una entidad
	FindByEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]*Record, error)

	// List lista las entradas más recientes
	List(ctx context.Context, limit, offset int) ([]*Record, error)
}
