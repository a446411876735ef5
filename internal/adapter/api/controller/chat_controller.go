package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/chat"
	"github.com/movilstock/backoffice/pkg/logger"
)

// ChatController maneja el chat directo entre el negocio y los
// revendedores. Las conversaciones son siempre entre el administrador
// configurado y un revendedor.
type ChatController struct {
	chatRepo        chat.Repository
	chatAdminUserID string
	logger          logger.Logger
}

// NewChatController crea una nueva instancia de ChatController
func NewChatController(chatRepo chat.Repository, chatAdminUserID string, logger logger.Logger) *ChatController {
	return &ChatController{
		chatRepo:        chatRepo,
		chatAdminUserID: chatAdminUserID,
		logger:          logger,
	}
}

// resolveResellerID determina el revendedor de la conversación: el propio
// para un revendedor, el del cuerpo para un administrador
func (c *ChatController) resolveResellerID(ctx *gin.Context, requested string) string {
	if ctx.GetString(auth.ContextRole) == "reseller" {
		return ctx.GetString(auth.ContextResellerID)
	}
	return requested
}

// SendMessage envía un mensaje en la conversación directa con un
// revendedor, creándola si todavía no existe
// @Summary Enviar mensaje
// @Tags chat
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param message body dto.ChatMessageRequest true "Datos del mensaje"
// @Success 201 {object} dto.ChatMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	resellerID := c.resolveResellerID(ctx, req.ResellerID)
	if resellerID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "reseller_id no informado", ""))
		return
	}

	conversation, err := c.chatRepo.FindDirectConversation(ctx, c.chatAdminUserID, resellerID)
	if err != nil {
		respondError(ctx, err, "error al buscar conversación")
		return
	}
	if conversation == nil {
		conversation = chat.NewConversation(c.chatAdminUserID, resellerID)
		if err := c.chatRepo.CreateConversation(ctx, conversation); err != nil {
			respondError(ctx, err, "error al crear conversación")
			return
		}
	}

	message := chat.NewMessage(conversation.ID, ctx.GetString(auth.ContextUserID), req.Body)
	if err := c.chatRepo.SaveMessage(ctx, message); err != nil {
		respondError(ctx, err, "error al enviar mensaje")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToChatMessageResponse(message))
}

// ListMessages lista los mensajes de la conversación con un revendedor
// @Summary Listar mensajes
// @Tags chat
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param reseller_id query string false "Revendedor de la conversación (solo administradores)"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {array} dto.ChatMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chat/messages [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	resellerID := c.resolveResellerID(ctx, ctx.Query("reseller_id"))
	if resellerID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "reseller_id no informado", ""))
		return
	}

	conversation, err := c.chatRepo.FindDirectConversation(ctx, c.chatAdminUserID, resellerID)
	if err != nil {
		respondError(ctx, err, "error al buscar conversación")
		return
	}
	if conversation == nil {
		ctx.JSON(http.StatusOK, []dto.ChatMessageResponse{})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "50"))
	pagination := dto.GetPagination(page, pageSize)

	messages, err := c.chatRepo.FindMessages(ctx, conversation.ID, pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar mensajes")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatMessageListResponse(messages))
}
