package gallery

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/registry"
)

// Dependencies holds what the gallery module needs from the application.
type Dependencies struct {
	Metrics *metrics.SiteMetrics
}

// Module serves the enlarged view of the dialog galleries.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates the gallery module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "galleries"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	store := registry.MustGet(reg, registry.ContentStoreKey)
	m.handler = NewHandler(store, m.deps.Metrics)

	group.GET("/:gallery/images/:id", m.handler.Open)
	group.DELETE("/:gallery/selection", m.handler.Close)
	return nil
}
