package controller

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/service"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// PaymentController maneja las peticiones de pagos informados
type PaymentController struct {
	paymentService *service.PaymentService
	logger         logger.Logger
}

// NewPaymentController crea una nueva instancia de PaymentController
func NewPaymentController(paymentService *service.PaymentService, logger logger.Logger) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Report registra un pago informado en estado pendiente
// @Summary Informar pago
// @Description Registra un pago informado a la espera de confirmación de un administrador
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payment body dto.ReportPaymentRequest true "Datos del pago"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments [post]
func (c *PaymentController) Report(ctx *gin.Context) {
	var req dto.ReportPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	// Un revendedor solo puede informar pagos propios
	resellerID := req.ResellerID
	if ctx.GetString(auth.ContextRole) == "reseller" {
		resellerID = ctx.GetString(auth.ContextResellerID)
	}
	if resellerID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "reseller_id no informado", ""))
		return
	}

	p, err := c.paymentService.Report(ctx, service.ReportInput{
		ResellerID:   resellerID,
		AmountCents:  req.AmountCents,
		Currency:     req.Currency,
		Note:         req.Note,
		ReceiptKey:   req.ReceiptKey,
		CashBoxID:    req.CashBoxID,
		ReportedByID: ctx.GetString(auth.ContextUserID),
	})
	if err != nil {
		respondError(ctx, err, "error al informar pago")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(p))
}

// Confirm confirma un pago pendiente
// @Summary Confirmar pago
// @Description Acredita el monto en el libro de deuda y registra el ingreso en caja si corresponde
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pago"
// @Param confirm body dto.ConfirmPaymentRequest false "Caja destino"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /payments/{id}/confirm [post]
func (c *PaymentController) Confirm(ctx *gin.Context) {
	// El cuerpo es opcional: sin cuerpo se usa la caja guardada en el pago
	var req dto.ConfirmPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	p, err := c.paymentService.Confirm(ctx, ctx.Param("id"), ctx.GetString(auth.ContextUserID), req.CashBoxID)
	if err != nil {
		respondError(ctx, err, "error al confirmar pago")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

// Reject rechaza un pago pendiente
// @Summary Rechazar pago
// @Description Rechaza el pago sin efectos sobre el libro de deuda ni la caja
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pago"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /payments/{id}/reject [post]
func (c *PaymentController) Reject(ctx *gin.Context) {
	p, err := c.paymentService.Reject(ctx, ctx.Param("id"), ctx.GetString(auth.ContextUserID))
	if err != nil {
		respondError(ctx, err, "error al rechazar pago")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

// Get devuelve un pago por su ID
// @Summary Buscar pago
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pago"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id} [get]
func (c *PaymentController) Get(ctx *gin.Context) {
	p, err := c.paymentService.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "error al buscar pago")
		return
	}

	// Un revendedor solo ve sus propios pagos
	if ctx.GetString(auth.ContextRole) == "reseller" &&
		p.ResellerID != ctx.GetString(auth.ContextResellerID) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "no tiene permisos sobre este recurso", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

// List lista pagos; un revendedor solo ve los propios
// @Summary Listar pagos
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.PaymentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments [get]
func (c *PaymentController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	var actorResellerID string
	if ctx.GetString(auth.ContextRole) == "reseller" {
		actorResellerID = ctx.GetString(auth.ContextResellerID)
	}

	payments, err := c.paymentService.List(ctx, actorResellerID, pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar pagos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(payments, pagination.Page, pagination.PageSize))
}
