package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	plantCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Submit(echo.Context) error
		UpdateMeta(echo.Context) error
		Locations(echo.Context) error
	},
	exportHandler func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.GET("/plants", plantCtrl.List)
	e.POST("/plants", plantCtrl.Submit)
	e.GET("/plants/:id", plantCtrl.Get)
	e.PUT("/plants/:id", plantCtrl.UpdateMeta)

	e.GET("/locations", plantCtrl.Locations)
	e.GET("/export.xlsx", exportHandler)
	return e
}
