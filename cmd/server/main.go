package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"plantlog/config"
	"plantlog/database"
	"plantlog/router"

	plantCtrlImp "plantlog/pkg/plant/controllerImp"
	plantRepoImp "plantlog/pkg/plant/repositoryImp"
	plantSvcImp "plantlog/pkg/plant/serviceImp"

	healthCtrlImp "plantlog/pkg/health/controllerImp"

	"plantlog/pkg/export"
	"plantlog/pkg/stage"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 4) Repo / service / controllers
	repo := plantRepoImp.New(db)
	svc := plantSvcImp.New(repo)
	pCtrl := plantCtrlImp.New(svc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	exportHandler := func(c echo.Context) error {
		now := stage.DateOnly(time.Now())
		if v := c.QueryParam("as_of"); v != "" {
			if t, err := time.Parse("2006-01-02", v); err == nil {
				now = t
			}
		}
		plants, err := repo.Load()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		f, err := export.Workbook(plants, now)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="plants.xlsx"`)
		c.Response().WriteHeader(http.StatusOK)
		return f.Write(c.Response())
	}

	// 5) Router
	r := router.New(e, pCtrl, exportHandler, hCtrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
