package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri/database"
	"agri/pkg/cost"
	"agri/pkg/testhelpers"
)

func get(h *HealthCtrl) (*httptest.ResponseRecorder, map[string]any) {
	e := echo.New()
	e.GET("/health", h.Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestHealthy(t *testing.T) {
	rec, body := get(NewHealthCtrl(testhelpers.NewDB(t), cost.DefaultTable()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"ok": true}, body["status"])
}

func TestUnhealthy(t *testing.T) {
	rec, _ := get(NewHealthCtrl(nil, cost.DefaultTable()))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	db := testhelpers.NewDB(t)
	require.NoError(t, database.Close(db))
	rec, body := get(NewHealthCtrl(db, cost.NewTable()))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, false, checks["database"].(map[string]any)["ok"])
	assert.Equal(t, "cost table is empty", checks["cost_table"].(map[string]any)["err"])
}
