package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/UniLog/internal/controller/common/logging"
	"github.com/Egor213/UniLog/internal/service"
	"github.com/labstack/echo/v4"
)

type ChannelController struct {
	logService service.Log
}

func NewChannelController(ls service.Log) *ChannelController {
	return &ChannelController{logService: ls}
}

func (cc *ChannelController) List(c echo.Context) error {
	tenantId, err := tenantParam(c)
	if err != nil {
		return err
	}

	channels, err := cc.logService.ListChannels(c.Request().Context(), tenantId)
	if err != nil {
		logginghelper.LogError(tenantId, "", err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, ToChannelResponses(channels))
}

func (cc *ChannelController) Get(c echo.Context) error {
	tenantId, name, err := channelParams(c)
	if err != nil {
		return err
	}

	ch, ok := cc.logService.GetChannel(c.Request().Context(), tenantId, name)
	if !ok {
		return errChannelNotFound
	}

	return c.JSON(http.StatusOK, ToChannelResponse(ch))
}

// Upsert creates or reconfigures the channel. Omitted fields fall back to the
// defaults, not to the channel's current settings.
func (cc *ChannelController) Upsert(c echo.Context) error {
	tenantId, name, err := channelParams(c)
	if err != nil {
		return err
	}

	var req upsertChannelRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	ctx := c.Request().Context()

	ok, err := cc.logService.UpsertChannel(ctx, tenantId, name, req.options()...)
	if err != nil {
		return toHTTPError(err)
	}
	if !ok {
		return errInternal
	}

	ch, found := cc.logService.GetChannel(ctx, tenantId, name)
	if !found {
		return errInternal
	}
	return c.JSON(http.StatusOK, ToChannelResponse(ch))
}

func (cc *ChannelController) Delete(c echo.Context) error {
	tenantId, name, err := channelParams(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if cc.logService.DeleteChannel(ctx, tenantId, name) {
		return c.NoContent(http.StatusNoContent)
	}

	// still registered means the store refused the delete
	if _, exists := cc.logService.GetChannel(ctx, tenantId, name); exists {
		return errInternal
	}
	return errChannelNotFound
}
