package controllerImp

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"agri/entities"
	"agri/pkg/calculation/service"
	"agri/pkg/cost"
	"agri/pkg/middleware"
	"agri/pkg/report"
	"agri/pkg/respond"
)

type CalculationCtrl struct {
	svc service.CalculationService
}

func New(svc service.CalculationService) *CalculationCtrl { return &CalculationCtrl{svc: svc} }

type calculateReq struct {
	UserID         string         `json:"userId"`
	Crop           string         `json:"crop"`
	Area           respond.Number `json:"area"`
	WaterResources string         `json:"waterResources"`
	SoilType       string         `json:"soilType"`
}

// userID prefers an explicit value, then the identity set by middleware.
func userID(c echo.Context, explicit string) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	return middleware.UserID(c)
}

func (h *CalculationCtrl) Calculate(c echo.Context) error {
	var req calculateReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	out, err := h.svc.Calculate(c.Request().Context(), userID(c, req.UserID), cost.Request{
		Crop:           req.Crop,
		Area:           float64(req.Area),
		WaterResources: req.WaterResources,
		SoilType:       req.SoilType,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CalculationCtrl) UserCalculations(c echo.Context) error {
	out, err := h.svc.History(c.Request().Context(), userID(c, c.QueryParam("userId")))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CalculationCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	out, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

var ReportColumns = []report.Column[entities.Calculation]{
	{Header: "Date", Value: func(r entities.Calculation) any { return r.CreatedAt.Format("2006-01-02 15:04") }},
	{Header: "Crop", Value: func(r entities.Calculation) any { return r.Crop }},
	{Header: "Area", Value: func(r entities.Calculation) any { return r.Area }},
	{Header: "Water_Resources", Value: func(r entities.Calculation) any { return r.WaterResources }},
	{Header: "Soil_Type", Value: func(r entities.Calculation) any { return r.SoilType }},
	{Header: "Estimated_Cost", Value: func(r entities.Calculation) any { return r.EstimatedCost }},
	{Header: "Fertilizer_Needs", Value: func(r entities.Calculation) any { return r.FertilizerNeeds }},
	{Header: "Water_Needs", Value: func(r entities.Calculation) any { return r.WaterNeeds }},
}

func (h *CalculationCtrl) Report(c echo.Context) error {
	out, err := h.svc.History(c.Request().Context(), userID(c, c.QueryParam("userId")))
	if err != nil {
		return respond.Error(c, err)
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, "Cost History", ReportColumns, out); err != nil {
		return respond.Error(c, err)
	}
	return respond.Attachment(c, report.ContentType, "cost_history.xlsx", buf.Bytes())
}
