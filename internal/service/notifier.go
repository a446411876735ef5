package service

import (
	"context"

	"github.com/movilstock/backoffice/internal/domain/audit"
	"github.com/movilstock/backoffice/internal/domain/notification"
	"github.com/movilstock/backoffice/internal/domain/user"
	"github.com/movilstock/backoffice/pkg/chat"
	"github.com/movilstock/backoffice/pkg/logger"
)

// Notifier concentra los efectos secundarios posteriores al commit:
// auditoría, mensajes de sistema en el chat y notificaciones. Todos son
// de mejor esfuerzo: una falla se registra en el log y nunca se propaga
// a la operación que la disparó.
type Notifier struct {
	auditRepo        audit.Repository
	chatRepo         chat.Repository
	notificationRepo notification.Repository
	userRepo         user.Repository
	chatAdminUserID  string
	logger           logger.Logger
}

// NewNotifier crea una nueva instancia de Notifier. chatAdminUserID es el
// usuario administrador que representa al negocio en las conversaciones
// directas; si está vacío, los mensajes de sistema no se emiten.
func NewNotifier(
	auditRepo audit.Repository,
	chatRepo chat.Repository,
	notificationRepo notification.Repository,
	userRepo user.Repository,
	chatAdminUserID string,
	logger logger.Logger,
) *Notifier {
	return &Notifier{
		auditRepo:        auditRepo,
		chatRepo:         chatRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		chatAdminUserID:  chatAdminUserID,
		logger:           logger,
	}
}

// Audit escribe una entrada de auditoría
func (n *Notifier) Audit(ctx context.Context, actorID *string, action, entityType, entityID string, meta map[string]any) {
	if n.auditRepo == nil {
		return
	}

	record := audit.NewRecord(actorID, action, entityType, entityID, meta)
	if err := n.auditRepo.Create(ctx, record); err != nil {
		n.logger.Error("error al escribir auditoría", "action", action, "entity_id", entityID, "error", err)
	}
}

// SystemMessageForReseller publica un mensaje de sistema en la
// conversación directa entre el administrador configurado y el
// revendedor. Si no existe tal conversación, no hace nada.
func (n *Notifier) SystemMessageForReseller(ctx context.Context, resellerID, body string) {
	if n.chatRepo == nil || n.chatAdminUserID == "" {
		return
	}

	conversation, err := n.chatRepo.FindDirectConversation(ctx, n.chatAdminUserID, resellerID)
	if err != nil {
		n.logger.Error("error al buscar conversación del revendedor", "reseller_id", resellerID, "error", err)
		return
	}
	if conversation == nil {
		return
	}

	message := chat.NewSystemMessage(conversation.ID, body)
	if err := n.chatRepo.SaveMessage(ctx, message); err != nil {
		n.logger.Error("error al enviar mensaje de sistema", "reseller_id", resellerID, "error", err)
	}
}

// NotifyAdmins crea una notificación para cada administrador
func (n *Notifier) NotifyAdmins(ctx context.Context, notificationType, body string) {
	if n.notificationRepo == nil || n.userRepo == nil {
		return
	}

	admins, err := n.userRepo.FindByRole(ctx, user.RoleAdmin)
	if err != nil {
		n.logger.Error("error al listar administradores", "error", err)
		return
	}

	for _, admin := range admins {
		if err := n.notificationRepo.Create(ctx, notification.New(admin.ID, notificationType, body)); err != nil {
			n.logger.Error("error al notificar administrador", "user_id", admin.ID, "error", err)
		}
	}
}

// NotifyUser crea una notificación para un usuario puntual
func (n *Notifier) NotifyUser(ctx context.Context, userID, notificationType, body string) {
	if n.notificationRepo == nil {
		return
	}

	if err := n.notificationRepo.Create(ctx, notification.New(userID, notificationType, body)); err != nil {
		n.logger.Error("error al notificar usuario", "user_id", userID, "error", err)
	}
}
