package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/respond"
	"agri/pkg/user/service"
)

type UserCtrl struct {
	svc      service.UserService
	pageSize int
}

func New(svc service.UserService, pageSize int) *UserCtrl {
	return &UserCtrl{svc: svc, pageSize: pageSize}
}

type userReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
}

func (r userReq) toEntity() *entities.User {
	return &entities.User{Name: r.Name, Email: r.Email, Role: r.Role, PhotoURL: r.PhotoURL}
}

func (h *UserCtrl) Create(c echo.Context) error {
	var req userReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	u, err := h.svc.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserCtrl) Get(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	u, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) GetByEmail(c echo.Context) error {
	u, err := h.svc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) List(c echo.Context) error {
	params, paged := listing.FromContext(c, h.pageSize)
	out, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return respond.Error(c, err)
	}
	if !paged {
		if out == nil {
			out = []entities.User{}
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusOK, listing.NewPage(out, params, total))
}

func (h *UserCtrl) Update(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	var req userReq
	if err := c.Bind(&req); err != nil {
		return respond.BadRequest(c, err)
	}
	u, err := h.svc.Update(c.Request().Context(), id, req.toEntity())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) Delete(c echo.Context) error {
	id, err := respond.ID(c, "id")
	if err != nil {
		return respond.Error(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, "User deleted")
}
