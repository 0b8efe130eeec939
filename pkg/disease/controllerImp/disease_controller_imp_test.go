package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agri/config"
	"agri/entities"
	"agri/pkg/disease/repositoryImp"
	"agri/pkg/disease/serviceImp"
	plantctrl "agri/pkg/plant/controllerImp"
	plantrepo "agri/pkg/plant/repositoryImp"
	plantsvc "agri/pkg/plant/serviceImp"
	"agri/pkg/relation"
	"agri/pkg/testhelpers"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db := testhelpers.NewDB(t)
	rel := relation.New(db)
	h := New(serviceImp.NewDiseaseService(repositoryImp.New(db), rel, zap.NewNop(), nil), 10)
	ph := plantctrl.New(plantsvc.NewPlantService(plantrepo.New(db), rel, config.DeleteOrphan, zap.NewNop(), nil), 10)

	e := echo.New()
	e.POST("/Plant/add", ph.Create)
	e.DELETE("/Plant/delete/:id", ph.Delete)

	g := e.Group("/api/diseases")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/plant/:plantId", h.ListByPlant)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRiceBlastScenario(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/Plant/add", `{"name":"Rice","fertilizers":"Urea"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rice := decode[entities.Plant](t, rec)
	assert.Equal(t, entities.StringList{"Urea"}, rice.Fertilizers)

	rec = do(e, http.MethodPost, "/api/diseases", fmt.Sprintf(`{"name":"Blast","plantId":%d}`, rice.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	blast := decode[entities.Disease](t, rec)

	rec = do(e, http.MethodGet, fmt.Sprintf("/api/diseases/plant/%d", rice.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]entities.Disease](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Blast", list[0].Name)

	require.Equal(t, http.StatusOK, do(e, http.MethodDelete, fmt.Sprintf("/Plant/delete/%d", rice.ID), "").Code)

	// default orphan policy: the disease survives its plant
	rec = do(e, http.MethodGet, fmt.Sprintf("/api/diseases/%d", blast.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Blast", decode[entities.Disease](t, rec).Name)
}

func TestCreateUnknownPlant(t *testing.T) {
	e := newServer(t)
	rec := do(e, http.MethodPost, "/api/diseases", `{"name":"Blast","plantId":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "plant 5 does not exist")
}

func TestNotFoundAndDelete(t *testing.T) {
	e := newServer(t)
	rec := do(e, http.MethodGet, "/api/diseases/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Disease not found"}`, rec.Body.String())

	rec = do(e, http.MethodPut, "/api/diseases/3", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(e, http.MethodPost, "/Plant/add", `{"name":"Rice"}`)
	do(e, http.MethodPost, "/api/diseases", `{"name":"Blast","plantId":1}`)

	rec = do(e, http.MethodDelete, "/api/diseases/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Disease deleted"}`, rec.Body.String())
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodDelete, "/api/diseases/1", "").Code)
}

func TestListSearch(t *testing.T) {
	e := newServer(t)
	do(e, http.MethodPost, "/Plant/add", `{"name":"Rice"}`)
	for _, n := range []string{"Blast", "Brown spot", "Sheath blight"} {
		require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/diseases", `{"name":"`+n+`","plantId":1}`).Code)
	}
	rec := do(e, http.MethodGet, "/api/diseases?q=bl", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entities.Disease](t, rec), 2)
}
