package dto

import (
	"time"

	"github.com/movilstock/backoffice/internal/domain/notification"
	"github.com/movilstock/backoffice/pkg/chat"
)

// ChatMessageRequest representa el envío de un mensaje de chat
type ChatMessageRequest struct {
	ResellerID string `json:"reseller_id" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

// ChatMessageResponse representa un mensaje de chat
type ChatMessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       *string   `json:"sender_id,omitempty"`
	IsSystem       bool      `json:"is_system"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationResponse representa una notificación de usuario
type NotificationResponse struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Body      string     `json:"body"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToChatMessageResponse convierte un mensaje de dominio en su respuesta
func ToChatMessageResponse(m *chat.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		IsSystem:       m.IsSystem,
		Body:           m.Body,
		CreatedAt:      m.CreatedAt,
	}
}

// ToChatMessageListResponse convierte una lista de mensajes
func ToChatMessageListResponse(messages []*chat.Message) []ChatMessageResponse {
	items := make([]ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		items = append(items, ToChatMessageResponse(m))
	}
	return items
}

// ToNotificationResponse convierte una notificación en su respuesta
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Body:      n.Body,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse convierte una lista de notificaciones
func ToNotificationListResponse(notifications []*notification.Notification) []NotificationResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, ToNotificationResponse(n))
	}
	return items
}
