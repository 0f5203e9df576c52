package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"plantlog/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	var plantCount int64
	if h.db == nil {
		dbOK = false
		dbErr = "gorm db is nil"
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbOK = false
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK = false
		dbErr = "ping: " + err.Error()
	} else {
		_ = h.db.WithContext(ctx).Model(&entities.Plant{}).Count(&plantCount).Error
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"plants":     plantCount,
		"checks": echo.Map{
			"database": echo.Map{"ok": dbOK, "err": dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
