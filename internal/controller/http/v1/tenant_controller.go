package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/UniLog/internal/controller/common/logging"
	"github.com/Egor213/UniLog/internal/service"
	"github.com/labstack/echo/v4"
)

type TenantController struct {
	setupService service.Setup
}

func NewTenantController(s service.Setup) *TenantController {
	return &TenantController{setupService: s}
}

func (tc *TenantController) List(c echo.Context) error {
	ids, err := tc.setupService.ListTenants(c.Request().Context())
	if err != nil {
		logginghelper.LogError(0, "", err)
		return errInternal
	}
	if ids == nil {
		ids = []int64{}
	}
	return c.JSON(http.StatusOK, ids)
}

func (tc *TenantController) Install(c echo.Context) error {
	tenantId, err := tenantParam(c)
	if err != nil {
		return err
	}

	if err := tc.setupService.Install(c.Request().Context(), tenantId); err != nil {
		logginghelper.LogError(tenantId, service.SelfChannel, err)
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (tc *TenantController) Uninstall(c echo.Context) error {
	tenantId, err := tenantParam(c)
	if err != nil {
		return err
	}

	if err := tc.setupService.Uninstall(c.Request().Context(), tenantId); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
