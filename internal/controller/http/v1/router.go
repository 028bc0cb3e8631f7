package httpv1

import (
	"github.com/Egor213/UniLog/internal/controller/http/validators"
	"github.com/Egor213/UniLog/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterDependencies struct {
	Log     service.Log
	Setup   service.Setup
	Sweeper service.RetentionSweeper
}

func NewRouterDependencies(services *service.Services) RouterDependencies {
	return RouterDependencies{
		Log:     services.Log,
		Setup:   services.Setup,
		Sweeper: services.Sweeper,
	}
}

// ConfigureRouter mounts the API. Request counts and latencies come from the
// echoprometheus middleware installed by the caller.
func ConfigureRouter(handler *echo.Echo, deps RouterDependencies) {
	handler.Validator = validators.New()
	handler.Use(middleware.Recover())

	channels := NewChannelController(deps.Log)
	entries := NewEntryController(deps.Log)
	tenants := NewTenantController(deps.Setup)
	sweeps := NewSweepController(deps.Sweeper)

	api := handler.Group("/api/v1")
	api.POST("/sweep", sweeps.Run)
	api.GET("/tenants", tenants.List)

	tenant := api.Group("/tenants/:tenant")
	tenant.POST("/install", tenants.Install)
	tenant.POST("/uninstall", tenants.Uninstall)

	tenant.GET("/channels", channels.List)
	tenant.GET("/channels/:name", channels.Get)
	tenant.PUT("/channels/:name", channels.Upsert)
	tenant.DELETE("/channels/:name", channels.Delete)

	tenant.POST("/channels/:name/entries", entries.Insert)
	tenant.GET("/channels/:name/entries", entries.List)
	tenant.GET("/channels/:name/can-log", entries.CanLog)
}
