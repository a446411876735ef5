package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/service"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// CashBoxController maneja las peticiones de cajas y sus movimientos
type CashBoxController struct {
	cashBoxService *service.CashBoxService
	logger         logger.Logger
}

// NewCashBoxController crea una nueva instancia de CashBoxController
func NewCashBoxController(cashBoxService *service.CashBoxService, logger logger.Logger) *CashBoxController {
	return &CashBoxController{
		cashBoxService: cashBoxService,
		logger:         logger,
	}
}

// Create crea una nueva caja
// @Summary Crear caja
// @Tags cashboxes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cashbox body dto.CashBoxRequest true "Datos de la caja"
// @Success 201 {object} dto.CashBoxResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /cashboxes [post]
func (c *CashBoxController) Create(ctx *gin.Context) {
	var req dto.CashBoxRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	box, err := c.cashBoxService.Create(ctx, req.Name, req.Currency, req.Type, ctx.GetString(auth.ContextUserID))
	if err != nil {
		respondError(ctx, err, "error al crear caja")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashBoxResponse(box))
}

// List lista todas las cajas
// @Summary Listar cajas
// @Tags cashboxes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.CashBoxResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashboxes [get]
func (c *CashBoxController) List(ctx *gin.Context) {
	boxes, err := c.cashBoxService.List(ctx)
	if err != nil {
		respondError(ctx, err, "error al listar cajas")
		return
	}

	items := make([]dto.CashBoxResponse, 0, len(boxes))
	for _, b := range boxes {
		items = append(items, dto.ToCashBoxResponse(b))
	}

	ctx.JSON(http.StatusOK, items)
}

// Get devuelve una caja por su ID
// @Summary Buscar caja
// @Tags cashboxes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la caja"
// @Success 200 {object} dto.CashBoxResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cashboxes/{id} [get]
func (c *CashBoxController) Get(ctx *gin.Context) {
	box, err := c.cashBoxService.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "error al buscar caja")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashBoxResponse(box))
}

// AddMovement registra un movimiento manual en una caja
// @Summary Registrar movimiento de caja
// @Tags cashboxes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la caja"
// @Param movement body dto.CashMovementRequest true "Datos del movimiento"
// @Success 201 {object} dto.CashMovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cashboxes/{id}/movements [post]
func (c *CashBoxController) AddMovement(ctx *gin.Context) {
	var req dto.CashMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	movement, err := c.cashBoxService.AddMovement(ctx, ctx.Param("id"), req.Type,
		req.AmountCents, req.Description, ctx.GetString(auth.ContextUserID))
	if err != nil {
		respondError(ctx, err, "error al registrar movimiento")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashMovementResponse(movement))
}

// Movements lista los movimientos de una caja
// @Summary Listar movimientos de caja
// @Tags cashboxes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la caja"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {array} dto.CashMovementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cashboxes/{id}/movements [get]
func (c *CashBoxController) Movements(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	movements, err := c.cashBoxService.Movements(ctx, ctx.Param("id"), pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar movimientos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashMovementListResponse(movements))
}

// Balance devuelve el saldo actual de una caja
// @Summary Saldo de caja
// @Description Devuelve el saldo plegando los movimientos de la caja
// @Tags cashboxes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la caja"
// @Success 200 {object} dto.CashBoxBalanceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cashboxes/{id}/balance [get]
func (c *CashBoxController) Balance(ctx *gin.Context) {
	id := ctx.Param("id")

	box, err := c.cashBoxService.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err, "error al buscar caja")
		return
	}

	balance, err := c.cashBoxService.BalanceCents(ctx, id)
	if err != nil {
		respondError(ctx, err, "error al calcular saldo")
		return
	}

	ctx.JSON(http.StatusOK, dto.CashBoxBalanceResponse{
		CashBoxID:    box.ID,
		Currency:     box.Currency,
		BalanceCents: balance,
	})
}
