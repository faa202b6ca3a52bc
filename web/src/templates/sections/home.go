package sections

import (
	"strconv"

	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/gallery"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomeProps is everything the home page shows.
type HomeProps struct {
	Content content.Content
	Menu    MenuState
	Staff   *gallery.Gallery[domain.StaffImage]
	PubTeam *gallery.Gallery[domain.TeamMember]
	Year    int

	// Cache, when set, memoizes sections that do not depend on visitor state.
	Cache func(name string, build func() g.Node) g.Node
}

func (p HomeProps) cached(name string, build func() g.Node) g.Node {
	if p.Cache == nil {
		return build()
	}
	return p.Cache(name, build)
}

// Home composes the page body: header, every section in scroll order, and
// the footer.
func Home(p HomeProps) g.Node {
	c := p.Content

	return g.Group{
		p.cached("header", func() g.Node { return SiteHeader(content.LogoURL) }),
		Main(Class("site-main"),
			p.cached("hero", func() g.Node { return Hero(c.Hero) }),
			p.cached("about", About),
			MenuSection(p.Menu),
			Div(Class("band muted-band"),
				Div(Class("container"),
					p.cached("atmosphere", func() g.Node { return AtmosphereGallery(c.Atmosphere) }),
					StaffGallery(p.Staff),
					p.cached("team", func() g.Node { return TeamGallery(c.Team) }),
					PubTeamGallery(p.PubTeam),
				),
			),
			p.cached("location", func() g.Node { return Location(c.Location, content.MapEmbedURL) }),
			p.cached("contact", func() g.Node { return Contact(c.Location) }),
		),
		p.cached("footer-"+strconv.Itoa(p.Year), func() g.Node { return SiteFooter(content.LogoURL, p.Year) }),
	}
}
