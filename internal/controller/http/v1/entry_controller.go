package httpv1

import (
	"fmt"
	"net/http"

	logginghelper "github.com/Egor213/UniLog/internal/controller/common/logging"
	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/service"
	"github.com/labstack/echo/v4"
)

type EntryController struct {
	logService service.Log
}

func NewEntryController(ls service.Log) *EntryController {
	return &EntryController{logService: ls}
}

func (ec *EntryController) Insert(c echo.Context) error {
	tenantId, name, err := channelParams(c)
	if err != nil {
		return err
	}

	var req insertEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}
	level, _ := domain.ParseLevel(req.Level)

	logginghelper.LogReceived(tenantId, name, level)

	// identity comes from the request, no prefix when absent
	opts := []service.EntryOption{service.WithCaller(req.Caller)}
	if req.FullTrace {
		opts = append(opts, service.WithFullTrace())
	}

	ctx := c.Request().Context()

	stored, err := ec.logService.InsertEntry(ctx, tenantId, name, level, req.Message, opts...)
	if err != nil {
		logginghelper.LogError(tenantId, name, err)
		return toHTTPError(err)
	}

	logginghelper.LogSaved(tenantId, name, level, stored)

	if !stored {
		if _, exists := ec.logService.GetChannel(ctx, tenantId, name); !exists {
			return errChannelNotFound
		}
	}

	return c.JSON(http.StatusOK, map[string]bool{"stored": stored})
}

// List reads entries oldest first. Query parameters min_ts and max_ts are
// inclusive unix seconds; min_level and max_level take names or numbers.
func (ec *EntryController) List(c echo.Context) error {
	tenantId, name, err := channelParams(c)
	if err != nil {
		return err
	}

	filter, err := entryFilterFromQuery(c)
	if err != nil {
		return badRequest(err)
	}

	entries, err := ec.logService.GetEntries(c.Request().Context(), tenantId, name, filter)
	if err != nil {
		logginghelper.LogError(tenantId, name, err)
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, ToEntryResponses(entries))
}

func (ec *EntryController) CanLog(c echo.Context) error {
	tenantId, name, err := channelParams(c)
	if err != nil {
		return err
	}

	level, ok := domain.ParseLevel(c.QueryParam("level"))
	if !ok {
		return badRequest(fmt.Errorf("invalid log level %q", c.QueryParam("level")))
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"can_log": ec.logService.CanLog(c.Request().Context(), tenantId, name, level),
	})
}

func entryFilterFromQuery(c echo.Context) (domain.EntryFilter, error) {
	filter := domain.DefaultEntryFilter()

	var minLevel, maxLevel string
	err := echo.QueryParamsBinder(c).
		Int64("min_ts", &filter.MinTS).
		Int64("max_ts", &filter.MaxTS).
		String("min_level", &minLevel).
		String("max_level", &maxLevel).
		BindError()
	if err != nil {
		return domain.EntryFilter{}, err
	}

	if minLevel != "" {
		level, ok := domain.ParseLevel(minLevel)
		if !ok {
			return domain.EntryFilter{}, fmt.Errorf("invalid min_level %q", minLevel)
		}
		filter.MinLevel = level
	}
	if maxLevel != "" {
		level, ok := domain.ParseLevel(maxLevel)
		if !ok {
			return domain.EntryFilter{}, fmt.Errorf("invalid max_level %q", maxLevel)
		}
		filter.MaxLevel = level
	}

	return filter, nil
}
