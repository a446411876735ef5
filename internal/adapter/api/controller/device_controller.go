package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/internal/service"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/logger"
)

// DeviceController maneja las peticiones relacionadas a equipos y al
// catálogo de estados
type DeviceController struct {
	deviceService *service.DeviceService
	logger        logger.Logger
}

// NewDeviceController crea una nueva instancia de DeviceController
func NewDeviceController(deviceService *service.DeviceService, logger logger.Logger) *DeviceController {
	return &DeviceController{
		deviceService: deviceService,
		logger:        logger,
	}
}

// Create da de alta un equipo
// @Summary Crear equipo
// @Description Da de alta un equipo en estado disponible
// @Tags devices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param device body dto.DeviceRequest true "Datos del equipo"
// @Success 201 {object} dto.DeviceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /devices [post]
func (c *DeviceController) Create(ctx *gin.Context) {
	var req dto.DeviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	dev, err := c.deviceService.Create(ctx, service.CreateInput{
		IMEI:                req.IMEI,
		SerialNumber:        req.SerialNumber,
		Model:               req.Model,
		Memory:              req.Memory,
		Color:               req.Color,
		Condition:           req.Condition,
		CostCents:           req.CostCents,
		PurchaseOrderItemID: req.PurchaseOrderItemID,
		ActorID:             ctx.GetString(auth.ContextUserID),
	})
	if err != nil {
		respondError(ctx, err, "error al crear equipo")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDeviceResponse(dev))
}

// Get devuelve un equipo por su ID
// @Summary Buscar equipo
// @Tags devices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del equipo"
// @Success 200 {object} dto.DeviceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /devices/{id} [get]
func (c *DeviceController) Get(ctx *gin.Context) {
	dev, err := c.deviceService.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "error al buscar equipo")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeviceResponse(dev))
}

// List lista equipos con filtros opcionales por estado o revendedor
// @Summary Listar equipos
// @Tags devices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param state query string false "Filtrar por estado"
// @Param reseller_id query string false "Filtrar por revendedor"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.DeviceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /devices [get]
func (c *DeviceController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	state := ctx.Query("state")
	resellerID := ctx.Query("reseller_id")

	// Un revendedor solo ve sus propios equipos
	if ctx.GetString(auth.ContextRole) == "reseller" {
		resellerID = ctx.GetString(auth.ContextResellerID)
		state = ""
	}

	devices, err := c.deviceService.List(ctx, state, resellerID, pagination.Limit(), pagination.Offset())
	if err != nil {
		respondError(ctx, err, "error al listar equipos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeviceListResponse(devices, pagination.Page, pagination.PageSize))
}

// SetState cambia el estado de un equipo
// @Summary Cambiar estado de equipo
// @Description Cambia el estado de un equipo a una clave válida del catálogo
// @Tags devices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del equipo"
// @Param state body dto.DeviceStateRequest true "Estado destino"
// @Success 200 {object} dto.DeviceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /devices/{id}/state [put]
func (c *DeviceController) SetState(ctx *gin.Context) {
	var req dto.DeviceStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	dev, err := c.deviceService.SetState(ctx, ctx.Param("id"), req.State, ctx.GetString(auth.ContextUserID))
	if err != nil {
		respondError(ctx, err, "error al cambiar estado")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeviceResponse(dev))
}

// CreateStatus agrega una fila al catálogo de estados
// @Summary Crear estado de equipo
// @Tags device-statuses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status body dto.DeviceStatusRequest true "Datos del estado"
// @Success 201 {object} dto.DeviceStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /device-statuses [post]
func (c *DeviceController) CreateStatus(ctx *gin.Context) {
	var req dto.DeviceStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	st, err := device.NewStatus(req.Key, req.Name, req.Sector, req.IsSellable, req.IsVisibleForReseller, req.SortOrder)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		return
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := c.deviceService.CreateStatus(ctx, st); err != nil {
		respondError(ctx, err, "error al crear estado")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDeviceStatusResponse(st))
}

// ListStatuses lista el catálogo de estados
// @Summary Listar estados de equipo
// @Tags device-statuses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.DeviceStatusResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /device-statuses [get]
func (c *DeviceController) ListStatuses(ctx *gin.Context) {
	statuses, err := c.deviceService.ListStatuses(ctx)
	if err != nil {
		respondError(ctx, err, "error al listar estados")
		return
	}

	items := make([]dto.DeviceStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, dto.ToDeviceStatusResponse(s))
	}

	ctx.JSON(http.StatusOK, items)
}

// UpdateStatus actualiza una fila del catálogo de estados
// @Summary Actualizar estado de equipo
// @Tags device-statuses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param key path string true "Clave del estado"
// @Param status body dto.DeviceStatusRequest true "Datos del estado"
// @Success 200 {object} dto.DeviceStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /device-statuses/{key} [put]
func (c *DeviceController) UpdateStatus(ctx *gin.Context) {
	var req dto.DeviceStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "petición inválida", err.Error()))
		return
	}

	st := &device.Status{
		Key:                  ctx.Param("key"),
		Name:                 req.Name,
		Sector:               req.Sector,
		IsSellable:           req.IsSellable,
		IsVisibleForReseller: req.IsVisibleForReseller,
		SortOrder:            req.SortOrder,
		IsActive:             true,
		UpdatedAt:            time.Now().UTC(),
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := c.deviceService.UpdateStatus(ctx, st); err != nil {
		respondError(ctx, err, "error al actualizar estado")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDeviceStatusResponse(st))
}
