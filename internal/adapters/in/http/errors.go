package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors to HTTP responses. Failed bulk imports use
// the {"validation_error": {"<kind>s": [{"id": n}]}} shape.
func writeError(ctx echo.Context, err error) error {
	var invalid *commands.InvalidEntriesError
	if errors.As(err, &invalid) {
		return ctx.JSON(http.StatusBadRequest, map[string]any{
			"validation_error": map[string][]IDItem{
				invalid.Kind + "s": toIDItems(invalid.IDs),
			},
		})
	}

	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}
