package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/notification"
)

// NotificationRepository implementa la interfaz notification.Repository
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository crea una nueva instancia de NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{
		db: db,
	}
}

// Create implementa notification.Repository.Create
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, user_id, type, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.UserID, n.Type, n.Body, n.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al crear notificación: %w", err)
	}

	return nil
}

// FindByUser implementa notification.Repository.FindByUser
func (r *NotificationRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, body, read_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar notificaciones: %w", err)
	}
	defer rows.Close()

	notifications := make([]*notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Body, &n.ReadAt,
			&n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer notificación: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return notifications, nil
}

// MarkRead implementa notification.Repository.MarkRead
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE notifications SET read_at = $1 WHERE id = $2 AND read_at IS NULL",
		time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("error al marcar notificación leída: %w", err)
	}

	return nil
}
