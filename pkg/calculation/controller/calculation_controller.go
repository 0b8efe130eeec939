package controller

import "github.com/labstack/echo/v4"

type CalculationController interface {
	Calculate(c echo.Context) error
	UserCalculations(c echo.Context) error
	Get(c echo.Context) error
	Report(c echo.Context) error
}
