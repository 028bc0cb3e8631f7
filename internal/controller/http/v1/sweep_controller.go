package httpv1

import (
	"net/http"

	"github.com/Egor213/UniLog/internal/service"
	"github.com/labstack/echo/v4"
)

type SweepController struct {
	sweeper service.RetentionSweeper
}

func NewSweepController(s service.RetentionSweeper) *SweepController {
	return &SweepController{sweeper: s}
}

// Run triggers a sweep outside the schedule. 409 means one is already running.
func (sc *SweepController) Run(c echo.Context) error {
	report, ran := sc.sweeper.Sweep(c.Request().Context())
	if !ran {
		return echo.NewHTTPError(http.StatusConflict, "sweep already in progress")
	}
	return c.JSON(http.StatusOK, ToSweepResponse(report))
}
