package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agri/pkg/cost"
)

var appStart = time.Now()

type HealthCtrl struct {
	db    *gorm.DB
	table *cost.Table
}

func NewHealthCtrl(db *gorm.DB, table *cost.Table) *HealthCtrl {
	return &HealthCtrl{db: db, table: table}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the database and reports the loaded cost table. Any failed
// check turns the response into a 503.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if h.db == nil {
		db = check{Err: "gorm db is nil"}
	} else if sqlDB, err := h.db.DB(); err != nil {
		db = check{Err: "db.DB(): " + err.Error()}
	} else if err := sqlDB.PingContext(ctx); err != nil {
		db = check{Err: "ping: " + err.Error()}
	}

	table := check{OK: h.table != nil && len(h.table.Crops()) > 0}
	if !table.OK {
		table.Err = "cost table is empty"
	}

	allOK := db.OK && table.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":   db,
			"cost_table": table,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
