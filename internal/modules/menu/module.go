package menu

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/registry"
)

// Dependencies holds what the menu module needs from the application.
type Dependencies struct {
	Metrics *metrics.SiteMetrics
}

// Module serves the menu fragment and its tab and accordion interactions.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates the menu module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "menu"
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	store := registry.MustGet(reg, registry.ContentStoreKey)
	m.handler = NewHandler(store, m.deps.Metrics)

	group.GET("", m.handler.Get)
	group.POST("/tab/:tab", m.handler.SetTab)
	group.POST("/categories/:id/toggle", m.handler.Toggle)
	return nil
}
