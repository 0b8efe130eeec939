package controller

import "github.com/labstack/echo/v4"

type CropController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	ListByLocation(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}
