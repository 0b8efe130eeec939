package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/diseases/:id", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diseases/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/diseases/:id", "GET", "200")))
}

func TestCountersAndHandler(t *testing.T) {
	m := New()
	m.Calculation("Rice")
	m.Calculation("Rice")
	m.Write("plant", "create")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("Rice")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `agri_cost_calculations_total{crop="Rice"} 2`))
	assert.True(t, strings.Contains(body, `agri_records_written_total{entity="plant",op="create"} 1`))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Calculation("Rice")
		m.Write("plant", "create")
	})
}
