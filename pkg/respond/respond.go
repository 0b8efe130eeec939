// Package respond maps domain errors onto HTTP responses.
package respond

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agri/pkg/apperrors"
)

type Message struct {
	Message string `json:"message"`
}

func Status(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnexpectedShape):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// Error writes {"message": ...} with the status matching err.
func Error(c echo.Context, err error) error {
	return c.JSON(Status(err), Message{Message: err.Error()})
}

// BadRequest is for bodies that could not be decoded at all.
func BadRequest(c echo.Context, err error) error {
	var shape *apperrors.UnexpectedShapeError
	if errors.As(err, &shape) {
		return c.JSON(http.StatusBadRequest, Message{Message: shape.Error()})
	}
	return c.JSON(http.StatusBadRequest, Message{Message: "invalid json"})
}

func OK(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, Message{Message: msg})
}

// ID parses a positive integer path parameter.
func ID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, apperrors.Invalid(name, "must be a positive integer, got %q", c.Param(name))
	}
	return uint(v), nil
}

// Attachment streams a generated file as a download.
func Attachment(c echo.Context, contentType, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, body)
}
