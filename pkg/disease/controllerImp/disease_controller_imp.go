package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agri/entities"
	"agri/pkg/disease/service"
	"agri/pkg/listing"
	"agri/pkg/respond"
)

type DiseaseCtrl struct {
	svc      service.DiseaseService
	pageSize int
}

func New(svc service.DiseaseService, pageSize int) *DiseaseCtrl {
	return &DiseaseCtrl{svc: svc, pageSize: pageSize}
}

type diseaseReq struct {
	PlantID             uint                `json:"plantId"`
	Name                string              `json:"name"`
	CausalAgent         string              `json:"causalAgent"`
	DiseaseTransmission string              `json:"diseaseTransmission"`
	DiseaseSymptoms     string              `json:"diseaseSymptoms"`
	Control             string              `json:"control"`
	Fertilizers         entities.StringList `json:"fertilizers"`
	ImageURL            string              `json:"imageUrl"`
}

func (r diseaseReq) toEntity() *entities.Disease {
	return &entities.Disease{
		PlantID: r.PlantID, Name: r.Name, CausalAgent: r.CausalAgent,
		DiseaseTransmission: r.DiseaseTransmission, DiseaseSymptoms: r.DiseaseSymptoms,
		Control: r.Control, Fertilizers: r.Fertilizers, ImageURL: r.ImageURL,
	}
}

func (h *DiseaseCtrl) Create(c echo.Context) error {
	var req diseaseReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	d, err := h.svc.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DiseaseCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DiseaseCtrl) List(c echo.Context) error {
	params, paged := listing.FromContext(c, h.pageSize)
	out, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(c, err)
	}
	if !paged {
		if out == nil {
			out = []entities.Disease{}
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusOK, listing.NewPage(out, params, total))
}

func (h *DiseaseCtrl) ListByPlant(c echo.Context) error {
	plantID, err := respond.ID(c, "plantId")
	if err != nil {
		return respond.Error(c, err)
	}
	out, err := h.svc.ListByPlant(c.Request().Context(), plantID)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DiseaseCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req diseaseReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	d, err := h.svc.Update(c.Request().Context(), id, req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DiseaseCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, "Disease deleted")
}
