package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notification representa un aviso dirigido a un usuario del sistema
type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Type      string     `json:"type"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Tipos de notificación emitidos por el sistema
const (
	TypePaymentReported  = "payment_reported"
	TypePaymentConfirmed = "payment_confirmed"
	TypePaymentRejected  = "payment_rejected"
	TypeConsignment      = "consignment"
)

// New crea una notificación sin leer
func New(userID, notificationType, body string) *Notification {
	return &Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notificationType,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}

// Repository define la interfaz para operaciones de notificaciones
type Repository interface {
	// Create crea una notificación
	Create(ctx context.Context, n *Notification) error

	// FindByUser lista las notificaciones de un usuario
	FindByUser(ctx context.Context, userID string, limit, offset int) ([]*Notification, error)

	// MarkRead marca una notificación como leída
	MarkRead(ctx context.Context, id string) error
}
