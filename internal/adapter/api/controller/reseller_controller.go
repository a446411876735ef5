package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/service"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// ResellerController maneja las peticiones relacionadas a revendedores,
// incluyendo su libro de deuda
type ResellerController struct {
	resellerService *service.ResellerService
	ledgerService   *service.LedgerService
	logger          logger.Logger
}

// NewResellerController crea una nueva instancia de ResellerController
func NewResellerController(resellerService *service.ResellerService, ledgerService *service.LedgerService, logger logger.Logger) *ResellerController {
	return &ResellerController{
		resellerService: resellerService,
		ledgerService:   ledgerService,
		logger:          logger,
	}
}

// canAccessReseller verifica que un revendedor solo acceda a sus propios
// recursos; los administradores acceden a todos
func canAccessReseller(ctx *gin.Context, resellerID string) bool {
	role := ctx.GetString(auth.ContextRole)
	if role != "reseller" {
		return true
	}
	return ctx.GetString(auth.ContextResellerID) == resellerID
}

// Create da de alta un revendedor con su cuenta de usuario
// @Summary Crear revendedor
// @Description Crea el perfil del revendedor y su cuenta de usuario
// @Tags resellers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param reseller body dto.ResellerRequest true "Datos del revendedor"
// @Success 201 {object} dto.ResellerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers [post]
func (c *ResellerController) Create(ctx *gin.Context) {
	var req dto.ResellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	res, err := c.resellerService.Create(ctx, service.CreateResellerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Segment:  req.Segment,
		Company:  req.Company,
		Phone:    req.Phone,
		Address:  req.Address,
		ActorID:  ctx.GetString(auth.ContextUserID),
	})
	if err != nil {
		respondError(ctx, err, "error al crear revendedor")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToResellerResponse(res))
}

// Get devuelve un revendedor por su ID
// @Summary Buscar revendedor
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del revendedor"
// @Success 200 {object} dto.ResellerResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /resellers/{id} [get]
func (c *ResellerController) Get(ctx *gin.Context) {
	id := ctx.Param("id")
	if !canAccessReseller(ctx, id) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "no tiene permisos sobre este recurso", ""))
		return
	}

	res, err := c.resellerService.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err, "error al buscar revendedor")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResellerResponse(res))
}

// List lista revendedores con paginación
// @Summary Listar revendedores
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ResellerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers [get]
func (c *ResellerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	resellers, err := c.resellerService.List(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar revendedores")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResellerListResponse(resellers, pagination.Page, pagination.PageSize))
}

// Update actualiza el perfil de un revendedor
// @Summary Actualizar revendedor
// @Tags resellers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del revendedor"
// @Param reseller body dto.ResellerUpdateRequest true "Datos del perfil"
// @Success 200 {object} dto.ResellerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /resellers/{id} [put]
func (c *ResellerController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ResellerUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	res, err := c.resellerService.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err, "error al buscar revendedor")
		return
	}

	res.Name = req.Name
	res.Segment = req.Segment
	res.Company = req.Company
	res.Phone = req.Phone
	res.Address = req.Address
	res.Latitude = req.Latitude
	res.Longitude = req.Longitude

	if err := c.resellerService.Update(ctx, res); err != nil {
		respondError(ctx, err, "error al actualizar revendedor")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResellerResponse(res))
}

// Delete elimina un revendedor con todas sus dependencias
// @Summary Eliminar revendedor
// @Description Elimina al revendedor, desasigna sus equipos y borra sus consignaciones, deuda, pagos y cuenta de usuario
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del revendedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /resellers/{id} [delete]
func (c *ResellerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.resellerService.Delete(ctx, id, ctx.GetString(auth.ContextUserID)); err != nil {
		respondError(ctx, err, "error al eliminar revendedor")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("revendedor eliminado", nil))
}

// Balance devuelve el saldo de deuda de un revendedor
// @Summary Saldo de deuda
// @Description Devuelve el saldo actual plegando el libro de deuda
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del revendedor"
// @Success 200 {object} dto.BalanceResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /resellers/{id}/balance [get]
func (c *ResellerController) Balance(ctx *gin.Context) {
	id := ctx.Param("id")
	if !canAccessReseller(ctx, id) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "no tiene permisos sobre este recurso", ""))
		return
	}

	balance, err := c.ledgerService.BalanceCents(ctx, id)
	if err != nil {
		respondError(ctx, err, "error al calcular saldo")
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{
		ResellerID:   id,
		BalanceCents: balance,
	})
}

// LedgerEntries lista los movimientos del libro de deuda de un revendedor
// @Summary Movimientos de deuda
// @Tags resellers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del revendedor"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /resellers/{id}/ledger [get]
func (c *ResellerController) LedgerEntries(ctx *gin.Context) {
	id := ctx.Param("id")
	if !canAccessReseller(ctx, id) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "no tiene permisos sobre este recurso", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	entries, err := c.ledgerService.Entries(ctx, id, pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar movimientos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerEntryListResponse(entries))
}

// AddLedgerEntry registra un ajuste manual en el libro de deuda
// @Summary Ajuste manual de deuda
// @Tags resellers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del revendedor"
// @Param entry body dto.LedgerEntryRequest true "Datos del ajuste"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /resellers/{id}/ledger [post]
func (c *ResellerController) AddLedgerEntry(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.LedgerEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	entry, err := c.ledgerService.AddManualEntry(ctx, id, req.AmountCents,
		ledger.EntryType(req.EntryType), req.Reason, ctx.GetString(auth.ContextUserID))
	if err != nil {
		respondError(ctx, err, "error al registrar ajuste")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}
