package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// TabRequest selects a menu tab.
type TabRequest struct {
	Tab string `param:"tab" validate:"required,max=32"`
}

// ToggleRequest opens or closes one menu category. Tab, when sent, is the
// tab the visitor was looking at.
type ToggleRequest struct {
	ID  string `param:"id" validate:"required,max=64"`
	Tab string `form:"tab" validate:"omitempty,max=32"`
}

// ImageRequest opens one image of a dialog gallery.
type ImageRequest struct {
	Gallery string `param:"gallery" validate:"required"`
	ID      int    `param:"id" validate:"gte=0"`
}

// GalleryRequest addresses a dialog gallery.
type GalleryRequest struct {
	Gallery string `param:"gallery" validate:"required"`
}

// BindAndValidate binds path, query and form values into req and validates it.
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// HTTPError maps domain errors to HTTP errors. Anything unknown is returned
// as is and ends up in the central error handler.
func HTTPError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownGallery):
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).SetInternal(err)
	case errors.Is(err, domain.ErrUnknownTab):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	default:
		return err
	}
}
