package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// Middleware records request latency and counts for the API router.
func Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware("unilog_api")
}
