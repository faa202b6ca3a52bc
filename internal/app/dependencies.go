package app

import (
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/modules/gallery"
	"github.com/madhatterpub/site/internal/modules/location"
	"github.com/madhatterpub/site/internal/modules/menu"
	"github.com/madhatterpub/site/internal/modules/sitecontent"
	"github.com/madhatterpub/site/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Store        *content.Store
	Cache        *rendering.FragmentCache
	Metrics      *metrics.SiteMetrics
	WatchContent bool
}

// contentDeps creates the dependency struct for the content module.
func contentDeps(deps Dependencies) sitecontent.Dependencies {
	return sitecontent.Dependencies{
		Store:   deps.Store,
		Cache:   deps.Cache,
		Metrics: deps.Metrics,
		Watch:   deps.WatchContent,
	}
}

func menuDeps(deps Dependencies) menu.Dependencies {
	return menu.Dependencies{Metrics: deps.Metrics}
}

func galleryDeps(deps Dependencies) gallery.Dependencies {
	return gallery.Dependencies{Metrics: deps.Metrics}
}

func locationDeps(deps Dependencies) location.Dependencies {
	return location.Dependencies{Metrics: deps.Metrics}
}
