package httpv1

import (
	"errors"
	"net/http"

	"github.com/Egor213/UniLog/internal/service"
	"github.com/labstack/echo/v4"
)

var (
	errInvalidTenant   = echo.NewHTTPError(http.StatusBadRequest, "invalid tenant id")
	errChannelNotFound = echo.NewHTTPError(http.StatusNotFound, "channel not found")
	errInternal        = echo.NewHTTPError(http.StatusInternalServerError, "internal error")
)

func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrChannelNotFound):
		return errChannelNotFound
	default:
		return errInternal
	}
}

func badRequest(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
