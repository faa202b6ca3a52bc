package location

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/location"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/middleware"
)

// Action names used in metrics.
const (
	ActionDirections   = "directions"
	ActionCall         = "call"
	ActionDirectionsQR = "directions_qr"
)

// Handler redirects to the outbound deep links for the current address.
type Handler struct {
	store   *content.Store
	metrics *metrics.SiteMetrics
}

// NewHandler creates a new location Handler. m may be nil.
func NewHandler(store *content.Store, m *metrics.SiteMetrics) *Handler {
	return &Handler{store: store, metrics: m}
}

func (h *Handler) record(action string) {
	if h.metrics != nil {
		h.metrics.RecordAction(action)
	}
}

// Directions redirects to the maps directions for the pub's address.
func (h *Handler) Directions(c echo.Context) error {
	h.record(ActionDirections)
	action := location.GetDirections(h.store.Current().Location.Address)
	return c.Redirect(http.StatusFound, action.URL)
}

// Call redirects to the tel: link of the pub's phone number.
func (h *Handler) Call(c echo.Context) error {
	h.record(ActionCall)
	action := location.CallNow(h.store.Current().Location.Phone)
	return c.Redirect(http.StatusFound, action.URL)
}

// DirectionsQR returns the directions link as a PNG QR code.
func (h *Handler) DirectionsQR(c echo.Context) error {
	png, err := location.DirectionsQR(h.store.Current().Location.Address, location.DefaultQRSize)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to render directions QR code", "error", err)
		return err
	}
	h.record(ActionDirectionsQR)
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", png)
}
