package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/infrastructure/database"
	"github.com/movilstock/backoffice/pkg/chat"
)

// ChatRepository implementa la interfaz chat.Repository
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository crea una nueva instancia de ChatRepository
func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

// FindDirectConversation implementa chat.Repository.FindDirectConversation.
// Devuelve nil sin error si la conversación no existe.
func (r *ChatRepository) FindDirectConversation(ctx context.Context, adminID, resellerID string) (*chat.Conversation, error) {
	var c chat.Conversation
	err := r.db.QueryRow(ctx,
		`SELECT id, admin_id, reseller_id, created_at
		FROM chat_conversations
		WHERE admin_id = $1 AND reseller_id = $2`,
		adminID, resellerID).Scan(&c.ID, &c.AdminID, &c.ResellerID, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar conversación: %w", err)
	}

	return &c, nil
}

// CreateConversation implementa chat.Repository.CreateConversation
func (r *ChatRepository) CreateConversation(ctx context.Context, c *chat.Conversation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_conversations (id, admin_id, reseller_id, created_at)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.AdminID, c.ResellerID, c.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al crear conversación: %w", err)
	}

	return nil
}

// SaveMessage implementa chat.Repository.SaveMessage
func (r *ChatRepository) SaveMessage(ctx context.Context, m *chat.Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_messages (
			id, conversation_id, sender_id, is_system, body, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.ConversationID, m.SenderID, m.IsSystem, m.Body, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al guardar mensaje: %w", err)
	}

	return nil
}

// FindMessages implementa chat.Repository.FindMessages
func (r *ChatRepository) FindMessages(ctx context.Context, conversationID string, limit, offset int) ([]*chat.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, conversation_id, sender_id, is_system, body, created_at
		FROM chat_messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		conversationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar mensajes: %w", err)
	}
	defer rows.Close()

	messages := make([]*chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.IsSystem,
			&m.Body, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer mensaje: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return messages, nil
}

// DeleteByReseller implementa chat.Repository.DeleteByReseller
func (r *ChatRepository) DeleteByReseller(ctx context.Context, resellerID string) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`DELETE FROM chat_messages WHERE conversation_id IN (
				SELECT id FROM chat_conversations WHERE reseller_id = $1
			)`, resellerID)
		if err != nil {
			return fmt.Errorf("error al eliminar mensajes: %w", err)
		}

		_, err = tx.Exec(ctx,
			"DELETE FROM chat_conversations WHERE reseller_id = $1", resellerID)
		if err != nil {
			return fmt.Errorf("error al eliminar conversaciones: %w", err)
		}

		return nil
	})
}
