package controller

import "github.com/labstack/echo/v4"

type PlantController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Submit(c echo.Context) error
	UpdateMeta(c echo.Context) error
	Locations(c echo.Context) error
}
