// Package module defines the lifecycle every site feature plugs into.
package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/registry"
)

// Module is a self-contained feature: its own routes under /<Name>, its own
// services and, optionally, background work.
type Module interface {
	// Name is the unique identifier and the route prefix of the module.
	Name() string

	// Register publishes the module's services in the registry. It runs for
	// every module before any Boot.
	Register(reg *registry.Registry) error

	// Boot mounts routes on router and starts background work bound to ctx.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown stops background work started in Boot.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op lifecycle methods for embedding.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
