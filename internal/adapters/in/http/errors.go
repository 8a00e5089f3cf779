package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorJSON maps a use case error to its HTTP status and writes the error
// body. Internal failures are logged but not echoed back to the client.
func (s *Server) errorJSON(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = "Internal server error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrActorIsNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, ports.ErrStockReservationConflict),
		errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed),
		errors.Is(err, queries.ErrPageIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
