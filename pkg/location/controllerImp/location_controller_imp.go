package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/location/service"
	"agri/pkg/report"
	"agri/pkg/respond"
)

type LocationCtrl struct {
	svc      service.LocationService
	pageSize int
}

func New(svc service.LocationService, pageSize int) *LocationCtrl {
	return &LocationCtrl{svc: svc, pageSize: pageSize}
}

// areaValue and areaUnit are derived server-side and not accepted here.
type locationReq struct {
	Province       string `json:"province"`
	District       string `json:"district"`
	City           string `json:"city"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	AreaSize       string `json:"areaSize"`
	SoilType       string `json:"soilType"`
	IrrigationType string `json:"irrigationType"`
}

func (r locationReq) toEntity() *entities.Location {
	return &entities.Location{
		Province: r.Province, District: r.District, City: r.City,
		Latitude: r.Latitude, Longitude: r.Longitude, AreaSize: r.AreaSize,
		SoilType: r.SoilType, IrrigationType: r.IrrigationType,
	}
}

func (h *LocationCtrl) Create(c echo.Context) error {
	var req locationReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	l, err := h.svc.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LocationCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	l, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LocationCtrl) List(c echo.Context) error {
	params, paged := listing.FromContext(c, h.pageSize)
	out, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(c, err)
	}
	if !paged {
		if out == nil {
			out = []entities.Location{}
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusOK, listing.NewPage(out, params, total))
}

func (h *LocationCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req locationReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	l, err := h.svc.Update(c.Request().Context(), id, req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LocationCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, "Location deleted")
}

func (h *LocationCtrl) Allocation(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	a, err := h.svc.Allocation(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

var ReportColumns = []report.Column[entities.Location]{
	{Header: "Province", Value: func(l entities.Location) any { return l.Province }},
	{Header: "District", Value: func(l entities.Location) any { return l.District }},
	{Header: "City", Value: func(l entities.Location) any { return l.City }},
	{Header: "Latitude", Value: func(l entities.Location) any { return l.Latitude }},
	{Header: "Longitude", Value: func(l entities.Location) any { return l.Longitude }},
	{Header: "Area_Size", Value: func(l entities.Location) any { return l.AreaSize }},
	{Header: "Soil_Type", Value: func(l entities.Location) any { return l.SoilType }},
	{Header: "Irrigation_Type", Value: func(l entities.Location) any { return l.IrrigationType }},
}

func (h *LocationCtrl) Report(c echo.Context) error {
	params, _ := listing.FromContext(c, h.pageSize)
	params.PerPage = 0
	out, _, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(c, err)
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, "Location Report", ReportColumns, out); err != nil {
		return respond.Error(c, err)
	}
	return respond.Attachment(c, report.ContentType, "location_report.xlsx", buf.Bytes())
}
