package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/pkg/dollarrate"
	"github.com/movilstock/backoffice/pkg/logger"
)

// DollarRateController expone la cotización del dólar
type DollarRateController struct {
	rateClient *dollarrate.Client
	logger     logger.Logger
}

// NewDollarRateController crea una nueva instancia de DollarRateController
func NewDollarRateController(rateClient *dollarrate.Client, logger logger.Logger) *DollarRateController {
	return &DollarRateController{
		rateClient: rateClient,
		logger:     logger,
	}
}

// Get devuelve la cotización vigente del dólar
// @Summary Cotización del dólar
// @Description Devuelve la cotización vigente, con caché de TTL corto
// @Tags dollar-rate
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dollarrate.Rate
// @Failure 502 {object} dto.ErrorResponse
// @Router /dollar-rate [get]
func (c *DollarRateController) Get(ctx *gin.Context) {
	rate, err := c.rateClient.Get(ctx)
	if err != nil {
		if errors.Is(err, dollarrate.ErrUnavailable) {
			ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "cotización no disponible", err.Error()))
			return
		}
		c.logger.Error("error al obtener cotización", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al obtener cotización", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rate)
}
