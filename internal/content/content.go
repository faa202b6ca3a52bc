// Package content holds the data every section renders: the built-in
// defaults and the optional overrides loaded from a YAML file.
package content

import (
	"github.com/madhatterpub/site/internal/domain"
)

// Menu holds both menu lists.
type Menu struct {
	Food   []domain.MenuCategory `yaml:"food" validate:"unique=ID,dive"`
	Drinks []domain.MenuCategory `yaml:"drinks" validate:"unique=ID,dive"`
}

// Content is the full set of data for one rendering of the site.
type Content struct {
	Hero       domain.Hero           `yaml:"hero"`
	Menu       Menu                  `yaml:"menu"`
	Atmosphere []domain.GalleryImage `yaml:"atmosphere" validate:"unique=ID,dive"`
	Staff      []domain.StaffImage   `yaml:"staff" validate:"unique=ID,dive"`
	Team       []domain.TeamMember   `yaml:"team" validate:"unique=ID,dive"`
	PubTeam    []domain.TeamMember   `yaml:"pub_team" validate:"unique=ID,dive"`
	Location   domain.Location       `yaml:"location"`
}

// Override is the on-disk shape of a content file. Every section is optional;
// a nil pointer or nil slice keeps the default.
type Override struct {
	Hero       *domain.Hero          `yaml:"hero"`
	Menu       *MenuOverride         `yaml:"menu"`
	Atmosphere []domain.GalleryImage `yaml:"atmosphere"`
	Staff      []domain.StaffImage   `yaml:"staff"`
	Team       []domain.TeamMember   `yaml:"team"`
	PubTeam    []domain.TeamMember   `yaml:"pub_team"`
	Location   *domain.Location      `yaml:"location"`
}

// MenuOverride replaces one or both menu lists.
type MenuOverride struct {
	Food   []domain.MenuCategory `yaml:"food"`
	Drinks []domain.MenuCategory `yaml:"drinks"`
}

// Apply returns base with every section present in o replaced. Lists are
// replaced wholesale; hero and location are merged field by field and empty
// strings keep the base text.
func (o Override) Apply(base Content) Content {
	out := base
	if o.Hero != nil {
		out.Hero = mergeHero(base.Hero, *o.Hero)
	}
	if o.Menu != nil {
		if o.Menu.Food != nil {
			out.Menu.Food = o.Menu.Food
		}
		if o.Menu.Drinks != nil {
			out.Menu.Drinks = o.Menu.Drinks
		}
	}
	if o.Atmosphere != nil {
		out.Atmosphere = o.Atmosphere
	}
	if o.Staff != nil {
		out.Staff = o.Staff
	}
	if o.Team != nil {
		out.Team = o.Team
	}
	if o.PubTeam != nil {
		out.PubTeam = o.PubTeam
	}
	if o.Location != nil {
		out.Location = mergeLocation(base.Location, *o.Location)
	}
	return out
}

func mergeHero(base, o domain.Hero) domain.Hero {
	if o.Images != nil {
		base.Images = o.Images
	}
	base.Title = firstNonEmpty(o.Title, base.Title)
	base.Tagline = firstNonEmpty(o.Tagline, base.Tagline)
	base.CTAText = firstNonEmpty(o.CTAText, base.CTAText)
	base.CTAHref = firstNonEmpty(o.CTAHref, base.CTAHref)
	return base
}

func mergeLocation(base, o domain.Location) domain.Location {
	base.Address = firstNonEmpty(o.Address, base.Address)
	base.Phone = firstNonEmpty(o.Phone, base.Phone)
	base.Email = firstNonEmpty(o.Email, base.Email)
	if o.Landmarks != nil {
		base.Landmarks = o.Landmarks
	}
	return base
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
