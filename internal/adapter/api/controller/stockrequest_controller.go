package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/domain/stockrequest"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// StockRequestController maneja los pedidos de stock de los revendedores
type StockRequestController struct {
	stockRequestRepo stockrequest.Repository
	logger           logger.Logger
}

// NewStockRequestController crea una nueva instancia de StockRequestController
func NewStockRequestController(stockRequestRepo stockrequest.Repository, logger logger.Logger) *StockRequestController {
	return &StockRequestController{
		stockRequestRepo: stockRequestRepo,
		logger:           logger,
	}
}

// Create registra un pedido de stock del revendedor autenticado
// @Summary Crear pedido de stock
// @Tags stock-requests
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body dto.StockRequestRequest true "Datos del pedido"
// @Success 201 {object} dto.StockRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /stock-requests [post]
func (c *StockRequestController) Create(ctx *gin.Context) {
	var req dto.StockRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	resellerID := ctx.GetString(auth.ContextResellerID)
	if resellerID == "" {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "solo un revendedor puede pedir stock", ""))
		return
	}

	request, err := stockrequest.New(resellerID, req.Model, req.Quantity, req.Note)
	if err != nil {
		respondError(ctx, err, "error al crear pedido")
		return
	}

	if err := c.stockRequestRepo.Create(ctx, request); err != nil {
		respondError(ctx, err, "error al guardar pedido")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStockRequestResponse(request))
}

// List lista pedidos de stock; un revendedor solo ve los propios
// @Summary Listar pedidos de stock
// @Tags stock-requests
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {array} dto.StockRequestResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock-requests [get]
func (c *StockRequestController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	var (
		requests []*stockrequest.StockRequest
		err      error
	)
	if ctx.GetString(auth.ContextRole) == "reseller" {
		requests, err = c.stockRequestRepo.FindByReseller(ctx, ctx.GetString(auth.ContextResellerID), pagination.Limit(), pagination.Offset())
	} else {
		requests, err = c.stockRequestRepo.List(ctx, pagination.Limit(), pagination.Offset())
	}
	if err != nil {
		respondError(ctx, err, "error al listar pedidos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockRequestListResponse(requests))
}

// UpdateStatus aprueba o rechaza un pedido de stock
// @Summary Cambiar estado de pedido
// @Tags stock-requests
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pedido"
// @Param status body dto.StockRequestStatusRequest true "Estado destino"
// @Success 200 {object} dto.StockRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stock-requests/{id}/status [put]
func (c *StockRequestController) UpdateStatus(ctx *gin.Context) {
	var req dto.StockRequestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	if !req.Status.Valid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, stockrequest.ErrInvalidStatus.Error(), ""))
		return
	}

	id := ctx.Param("id")
	if err := c.stockRequestRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		respondError(ctx, err, "error al actualizar pedido")
		return
	}

	request, err := c.stockRequestRepo.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err, "error al buscar pedido")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockRequestResponse(request))
}
