package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/dto"
	"github.com/movilstock/backoffice/internal/domain/cashbox"
	"github.com/movilstock/backoffice/internal/domain/consignment"
	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/payment"
	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/internal/domain/stockrequest"
	"github.com/movilstock/backoffice/internal/domain/user"
	"github.com/movilstock/backoffice/internal/service"
)

var notFoundErrors = []error{
	device.ErrNotFound,
	consignment.ErrNotFound,
	payment.ErrNotFound,
	reseller.ErrNotFound,
	user.ErrNotFound,
	cashbox.ErrNotFound,
	stockrequest.ErrNotFound,
}

var conflictErrors = []error{
	device.ErrDuplicateIMEI,
	user.ErrDuplicateEmail,
	payment.ErrAlreadyProcessed,
	consignment.ErrAlreadyConsigned,
}

var validationErrors = []error{
	device.ErrEmptyIMEI,
	device.ErrEmptyModel,
	device.ErrInvalidCondition,
	device.ErrUnknownState,
	consignment.ErrDeviceNotAvailable,
	consignment.ErrNotActive,
	consignment.ErrInvalidMethod,
	consignment.ErrInvalidAmountPaid,
	consignment.ErrInvalidSaleAmount,
	payment.ErrInvalidAmount,
	payment.ErrEmptyCurrency,
	ledger.ErrInvalidAmount,
	ledger.ErrInvalidEntryType,
	ledger.ErrEmptyReason,
	cashbox.ErrInvalidAmount,
	cashbox.ErrEmptyName,
	cashbox.ErrEmptyCurrency,
	cashbox.ErrInvalidBoxType,
	cashbox.ErrInvalidMovementType,
	cashbox.ErrEmptyDescription,
	stockrequest.ErrEmptyModel,
	stockrequest.ErrInvalidQuantity,
	stockrequest.ErrInvalidStatus,
	reseller.ErrEmptyName,
	user.ErrEmptyName,
	user.ErrEmptyEmail,
}

// respondError mapea los errores de dominio a su código HTTP: los "no
// encontrado" a 404, los conflictos de estado a 409, las validaciones a
// 400 y el resto a 500.
func respondError(ctx *gin.Context, err error, fallback string) {
	if errors.Is(err, service.ErrForbidden) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, err.Error(), ""))
		return
	}

	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
			return
		}
	}

	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
			return
		}
	}

	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
			return
		}
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
}
