package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "nayrana/internal/errors"
)

// respondError maps a domain error onto the standard {error, code} body.
// Unexpected errors are logged server-side and reach the client as a
// generic 500.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(c echo.Context, message, code string) error {
	return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: message, Code: code})
}
