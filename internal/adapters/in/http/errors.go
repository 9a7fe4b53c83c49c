package http

import (
	"errors"
	"net/http"

	"couriernet/internal/core/application/usecases/commands"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/domain/model/wallet"
	"couriernet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain and application errors to HTTP status codes.
// The error message is passed through verbatim; domain errors carry no
// internals worth hiding.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, shipment.ErrInvalidCode),
		errors.Is(err, shipment.ErrInvalidStateTransition),
		errors.Is(err, commands.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
