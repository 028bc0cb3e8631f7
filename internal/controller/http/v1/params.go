package httpv1

import (
	"github.com/labstack/echo/v4"
)

func tenantParam(c echo.Context) (int64, error) {
	var tenantId int64
	if err := echo.PathParamsBinder(c).MustInt64("tenant", &tenantId).BindError(); err != nil {
		return 0, errInvalidTenant
	}
	return tenantId, nil
}

func channelParams(c echo.Context) (int64, string, error) {
	tenantId, err := tenantParam(c)
	if err != nil {
		return 0, "", err
	}
	return tenantId, c.Param("name"), nil
}
