package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/pkg/apperror"
	"golang-trade-pilot/pkg/logger"

	"github.com/labstack/echo/v4"
)

func statusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrInvalidTransition), errors.Is(err, apperror.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps err to its HTTP status. Internal errors are logged and hidden from the client.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	status := statusCode(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(c.Request().Context(), "Request failed",
			logger.StringField("path", c.Path()), logger.ErrorField(err))
		return c.JSON(status, dto.ErrorResponse{Error: "internal server error", Code: apperror.Code(err)})
	}
	return c.JSON(status, dto.ErrorResponse{Error: err.Error(), Code: apperror.Code(err)})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: "validation_error"})
}

func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
