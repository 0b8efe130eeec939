package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agri/entities"
	"agri/pkg/crop/service"
	"agri/pkg/respond"
)

type CropCtrl struct {
	svc service.CropService
}

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc: svc} }

type cropReq struct {
	LocationID    uint           `json:"locationId"`
	CropType      string         `json:"cropType"`
	AllocatedArea respond.Number `json:"allocatedArea"`
}

func (r cropReq) toEntity() *entities.Crop {
	return &entities.Crop{LocationID: r.LocationID, CropType: r.CropType, AllocatedArea: float64(r.AllocatedArea)}
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	out, err := h.svc.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
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

func (h *CropCtrl) ListByLocation(c echo.Context) error {
	locationID, err := respond.ID(c, "locationId")
	if err != nil {
		return respond.Error(c, err)
	}
	out, err := h.svc.ListByLocation(c.Request().Context(), locationID)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	out, err := h.svc.Update(c.Request().Context(), id, req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, "Crop deleted")
}
