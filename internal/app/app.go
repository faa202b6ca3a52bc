// Package app assembles the site from configuration: content, caches,
// metrics, the HTTP server and its modules.
package app

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/config"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/handlers"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/registry"
	"github.com/madhatterpub/site/internal/rendering"
	"github.com/madhatterpub/site/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
)

// App is a fully wired site.
type App struct {
	Config   config.Provider
	Registry *registry.Registry
	Store    *content.Store
	Cache    *rendering.FragmentCache
	Metrics  *metrics.SiteMetrics
	Renderer *rendering.UniversalRenderer
	Home     *handlers.HomeHandler
	Server   *server.Server
}

// New loads the content named in cfg from fsys and builds the services the
// page and the modules share. Nothing listens or watches until Boot.
func New(cfg config.Provider, fsys afero.Fs) (*App, error) {
	store, err := content.NewStore(fsys, cfg.GetContentFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	siteMetrics, err := metrics.New(promRegistry)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	renderer := rendering.NewUniversalRenderer()
	cache := rendering.NewFragmentCache(renderer, cfg.GetFragmentCacheTTL(), siteMetrics)
	home := handlers.NewHomeHandler(store, cache, cfg.GetAppBaseURL(), handlers.WithRecorder(siteMetrics))

	return &App{
		Config:   cfg,
		Registry: registry.New(cfg),
		Store:    store,
		Cache:    cache,
		Metrics:  siteMetrics,
		Renderer: renderer,
		Home:     home,
	}, nil
}

// Boot creates the HTTP server, starts the modules and mounts every route.
// Background work is bound to ctx.
func (a *App) Boot(ctx context.Context) error {
	s, err := server.New(server.Dependencies{
		Config:   a.Config,
		Echo:     echo.New(),
		Renderer: a.Renderer,
		Home:     a.Home,
		Metrics:  a.Metrics,
	})
	if err != nil {
		return err
	}

	modules := NewModules(Dependencies{
		Store:        a.Store,
		Cache:        a.Cache,
		Metrics:      a.Metrics,
		WatchContent: a.Config.GetContentWatch(),
	})
	if err := s.InitModules(ctx, modules, a.Registry); err != nil {
		return err
	}
	if err := s.RegisterRoutes(); err != nil {
		return err
	}
	a.Server = s
	return nil
}
