// Package sitecontent publishes the site content, the fragment cache and the
// metrics to the other modules and keeps the content fresh while the server
// runs.
package sitecontent

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/registry"
	"github.com/madhatterpub/site/internal/rendering"
)

// Dependencies holds the shared services this module owns.
type Dependencies struct {
	Store   *content.Store
	Cache   *rendering.FragmentCache
	Metrics *metrics.SiteMetrics
	// Watch reloads the content file whenever it changes on disk.
	Watch bool
}

// Module provides the content services and runs the file watcher.
type Module struct {
	module.BaseModule
	deps Dependencies

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates the content module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "content"
}

// Register publishes the store, the cache and the metrics. Every successful
// reload empties the cache, so no section outlives the content it came from.
func (m *Module) Register(reg *registry.Registry) error {
	if err := registry.Provide(reg, registry.ContentStoreKey, m.deps.Store); err != nil {
		return err
	}
	if err := registry.Provide(reg, registry.FragmentCacheKey, m.deps.Cache); err != nil {
		return err
	}
	if m.deps.Metrics != nil {
		if err := registry.Provide(reg, registry.MetricsKey, m.deps.Metrics); err != nil {
			return err
		}
		m.deps.Store.SetRecorder(m.deps.Metrics)
	}

	cache := m.deps.Cache
	m.deps.Store.OnReload(func(content.Content) {
		cache.Flush()
	})
	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	group.GET("/version", m.version)

	if !m.deps.Watch || m.deps.Store.Path() == "" {
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.deps.Store.Watch(watchCtx); err != nil {
			slog.Error("Content watcher failed", "error", err)
		}
	}()
	slog.Info("Watching content file", "path", m.deps.Store.Path())
	return nil
}

// Shutdown stops the watcher and waits for it, or for ctx to expire.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type versionResponse struct {
	Version uint64 `json:"version"`
	Path    string `json:"path,omitempty"`
}

func (m *Module) version(c echo.Context) error {
	return c.JSON(http.StatusOK, versionResponse{
		Version: m.deps.Store.Version(),
		Path:    m.deps.Store.Path(),
	})
}
