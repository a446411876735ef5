package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/domain/user"
	"github.com/movilstock/backoffice/internal/service"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// ConsignmentController maneja las peticiones de consignaciones
type ConsignmentController struct {
	consignmentService *service.ConsignmentService
	logger             logger.Logger
}

// NewConsignmentController crea una nueva instancia de ConsignmentController
func NewConsignmentController(consignmentService *service.ConsignmentService, logger logger.Logger) *ConsignmentController {
	return &ConsignmentController{
		consignmentService: consignmentService,
		logger:             logger,
	}
}

// Assign entrega un equipo a un revendedor en consignación
// @Summary Entregar equipo en consignación
// @Description Crea la consignación activa, pasa el equipo a consignado y registra la deuda inicial si corresponde
// @Tags consignments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param consignment body dto.AssignRequest true "Datos de la entrega"
// @Success 201 {object} dto.ConsignmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /consignments [post]
func (c *ConsignmentController) Assign(ctx *gin.Context) {
	var req dto.AssignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	cons, err := c.consignmentService.Assign(ctx, service.AssignInput{
		DeviceID:        req.DeviceID,
		ResellerID:      req.ResellerID,
		AssignedByID:    ctx.GetString(auth.ContextUserID),
		Note:            req.Note,
		PaymentMethod:   req.PaymentMethod,
		SalePriceCents:  req.SalePriceCents,
		AmountPaidCents: req.AmountPaidCents,
	})
	if err != nil {
		respondError(ctx, err, "error al entregar equipo")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToConsignmentResponse(cons))
}

// MarkSold cierra una consignación como vendida
// @Summary Registrar venta
// @Description Cierra la consignación, pasa el equipo a vendido y registra la deuda por el monto de venta
// @Tags consignments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la consignación"
// @Param sale body dto.MarkSoldRequest true "Datos de la venta"
// @Success 200 {object} dto.ConsignmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /consignments/{id}/sold [post]
func (c *ConsignmentController) MarkSold(ctx *gin.Context) {
	var req dto.MarkSoldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	cons, err := c.consignmentService.MarkSold(ctx, service.MarkSoldInput{
		ConsignmentID:   ctx.Param("id"),
		ActorID:         ctx.GetString(auth.ContextUserID),
		ActorRole:       user.Role(ctx.GetString(auth.ContextRole)),
		SaleAmountCents: req.SaleAmountCents,
		Note:            req.Note,
	})
	if err != nil {
		respondError(ctx, err, "error al registrar venta")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsignmentResponse(cons))
}

// Get devuelve una consignación con su historial
// @Summary Buscar consignación
// @Tags consignments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la consignación"
// @Success 200 {object} dto.ConsignmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /consignments/{id} [get]
func (c *ConsignmentController) Get(ctx *gin.Context) {
	cons, err := c.consignmentService.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "error al buscar consignación")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsignmentResponse(cons))
}

// List lista consignaciones; un revendedor solo ve las propias
// @Summary Listar consignaciones
// @Tags consignments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ConsignmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /consignments [get]
func (c *ConsignmentController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	consignments, err := c.consignmentService.List(ctx,
		user.Role(ctx.GetString(auth.ContextRole)),
		ctx.GetString(auth.ContextResellerID),
		pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar consignaciones")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConsignmentListResponse(consignments, pagination.Page, pagination.PageSize))
}
