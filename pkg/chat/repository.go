package chat

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio del chat
type Repository interface {
	// FindDirectConversation busca la conversación directa entre un
	// administrador y un revendedor; devuelve nil si no existe
	FindDirectConversation(ctx context.Context, adminID, resellerID string) (*Conversation, error)

	// CreateConversation crea una conversación directa
	CreateConversation(ctx context.Context, c *Conversation) error

	// SaveMessage guarda un mensaje en una conversación
	SaveMessage(ctx context.Context, m *Message) error

	// FindMessages lista los mensajes de una conversación, del más
	// reciente al más antiguo
	FindMessages(ctx context.Context, conversationID string, limit, offset int) ([]*Message, error)

	// DeleteByReseller elimina las conversaciones de un revendedor con
	// sus mensajes
	DeleteByReseller(ctx context.Context, resellerID string) error
}
