package location

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/middleware"
	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/registry"
)

// QR codes are rendered on every request, so visitors get a small budget.
const (
	qrRatePerSecond = 1
	qrBurst         = 5
)

// Dependencies holds what the location module needs from the application.
type Dependencies struct {
	Metrics *metrics.SiteMetrics
}

// Module serves the server side of the "Get Directions" and "Call Now"
// actions.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates the location module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "location"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	store := registry.MustGet(reg, registry.ContentStoreKey)
	m.handler = NewHandler(store, m.deps.Metrics)

	group.GET("/directions", m.handler.Directions)
	group.GET("/call", m.handler.Call)
	group.GET("/directions.png", m.handler.DirectionsQR, middleware.RateLimiter(qrRatePerSecond, qrBurst))
	return nil
}
