package controllerImp

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/plant/service"
	"agri/pkg/report"
	"agri/pkg/respond"
)

type PlantCtrl struct {
	svc      service.PlantService
	pageSize int
}

func New(svc service.PlantService, pageSize int) *PlantCtrl {
	return &PlantCtrl{svc: svc, pageSize: pageSize}
}

type plantReq struct {
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Climate         string              `json:"climate"`
	SoilPh          string              `json:"soilPh"`
	LandPreparation string              `json:"landPreparation"`
	Fertilizers     entities.StringList `json:"fertilizers"`
	ImageURL        string              `json:"imageUrl"`
	Date            string              `json:"date"`
}

func (r plantReq) toEntity() *entities.Plant {
	return &entities.Plant{
		Name: r.Name, Description: r.Description, Climate: r.Climate, SoilPh: r.SoilPh,
		LandPreparation: r.LandPreparation, Fertilizers: r.Fertilizers, ImageURL: r.ImageURL, Date: r.Date,
	}
}

func (h *PlantCtrl) Create(c echo.Context) error {
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	p, err := h.svc.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlantCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// List returns a bare array unless page/perPage is given, in which case
// it returns a listing.Page envelope.
func (h *PlantCtrl) List(c echo.Context) error {
	params, paged := listing.FromContext(c, h.pageSize)
	out, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(c, err)
	}
	if !paged {
		if out == nil {
			out = []entities.Plant{}
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusOK, listing.NewPage(out, params, total))
}

func (h *PlantCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	p, err := h.svc.Update(c.Request().Context(), id, req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, "Plant deleted")
}

var ReportColumns = []report.Column[entities.Plant]{
	{Header: "Plant_Name", Value: func(p entities.Plant) any { return p.Name }},
	{Header: "Date", Value: func(p entities.Plant) any { return p.Date }},
	{Header: "Description", Value: func(p entities.Plant) any { return p.Description }},
	{Header: "Climate", Value: func(p entities.Plant) any { return p.Climate }},
	{Header: "Soil_pH", Value: func(p entities.Plant) any { return p.SoilPh }},
	{Header: "Land_Preparation", Value: func(p entities.Plant) any { return p.LandPreparation }},
	{Header: "Fertilizers", Value: func(p entities.Plant) any { return strings.Join(p.Fertilizers, ", ") }},
}

// Report exports every plant matching ?q= as plant_report.xlsx.
func (h *PlantCtrl) Report(c echo.Context) error {
	params, _ := listing.FromContext(c, h.pageSize)
	params.PerPage = 0
	out, _, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(c, err)
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, "Plant Report", ReportColumns, out); err != nil {
		return respond.Error(c, err)
	}
	return respond.Attachment(c, report.ContentType, "plant_report.xlsx", buf.Bytes())
}
