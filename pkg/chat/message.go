package chat

import (
	"time"

	"github.com/google/uuid"
)

// Conversation representa una conversación directa entre un administrador
// y un revendedor
type Conversation struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"admin_id"`
	ResellerID string    `json:"reseller_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Message representa un mensaje dentro de una conversación. Los mensajes
// de sistema no tienen remitente.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       *string   `json:"sender_id,omitempty"`
	IsSystem       bool      `json:"is_system"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewConversation crea una conversación directa entre un administrador
// y un revendedor
func NewConversation(adminID, resellerID string) *Conversation {
	return &Conversation{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		ResellerID: resellerID,
		CreatedAt:  time.Now().UTC(),
	}
}

// NewMessage crea un mensaje enviado por un usuario
func NewMessage(conversationID, senderID, body string) *Message {
	return &Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       &senderID,
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	}
}

// NewSystemMessage crea un mensaje de sistema para una conversación
func NewSystemMessage(conversationID, body string) *Message {
	return &Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		IsSystem:       true,
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	}
}
