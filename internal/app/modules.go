package app

import (
	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/modules/gallery"
	"github.com/madhatterpub/site/internal/modules/location"
	"github.com/madhatterpub/site/internal/modules/menu"
	"github.com/madhatterpub/site/internal/modules/sitecontent"
)

// NewModules returns the site's modules in boot order. The content module
// comes first because it publishes the services the others look up.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		sitecontent.New(contentDeps(deps)),
		menu.New(menuDeps(deps)),
		gallery.New(galleryDeps(deps)),
		location.New(locationDeps(deps)),
	}
}
