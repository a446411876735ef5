package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/domain/notification"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// NotificationController maneja las notificaciones del usuario autenticado
type NotificationController struct {
	notificationRepo notification.Repository
	logger           logger.Logger
}

// NewNotificationController crea una nueva instancia de NotificationController
func NewNotificationController(notificationRepo notification.Repository, logger logger.Logger) *NotificationController {
	return &NotificationController{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List lista las notificaciones del usuario autenticado
// @Summary Listar notificaciones
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {array} dto.NotificationResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	notifications, err := c.notificationRepo.FindByUser(ctx, ctx.GetString(auth.ContextUserID), pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar notificaciones")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}

// MarkRead marca una notificación como leída
// @Summary Marcar notificación leída
// @Tags notifications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la notificación"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notificationRepo.MarkRead(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err, "error al marcar notificación")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificación leída", nil))
}
