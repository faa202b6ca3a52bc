package sections_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/gallery"
	"github.com/madhatterpub/site/internal/menu"
	"github.com/madhatterpub/site/web/src/templates/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

var altPattern = regexp.MustCompile(`<img [^>]*alt="([^"]*)"`)

// alts returns the alt attribute of every rendered image, in order.
func alts(html string) []string {
	var out []string
	for _, m := range altPattern.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	return out
}

func TestMenuPanel(t *testing.T) {
	c := content.Default()
	ctrl := menu.New(c.Menu.Food, c.Menu.Drinks)

	tests := []struct {
		name        string
		act         func()
		contains    []string
		notContains []string
	}{
		{
			name: "default shows the first food category expanded",
			act:  func() {},
			contains: []string{
				`id="menu-panel"`,
				"Appetizers",
				"Loaded Nachos",
				"$14.99",
				"Shareable",
				"Available until midnight",
				`aria-selected="true"`,
				`id="menu-category-appetizers"`,
				`hx-post="/menu/tab/drinks"`,
				`hx-post="/menu/categories/mains/toggle"`,
			},
			notContains: []string{
				"Mad Hatter Burger",
				"Signature Cocktails",
			},
		},
		{
			name: "drinks tab reveals cocktails",
			act:  func() { ctrl.SetActiveTab(domain.TabDrinks) },
			contains: []string{
				"Signature Cocktails",
				"Wonderland Martini",
				`class="tab-panel tab-panel-drinks"`,
			},
			notContains: []string{
				"Loaded Nachos",
				"Available until midnight",
			},
		},
		{
			name:     "back to food restores the default expansion",
			act:      func() { ctrl.SetActiveTab(domain.TabFood) },
			contains: []string{"Loaded Nachos"},
			notContains: []string{
				"Mad Hatter Burger",
			},
		},
		{
			name:     "multiple food categories can be open",
			act:      func() { ctrl.Toggle("mains") },
			contains: []string{"Loaded Nachos", "Mad Hatter Burger", "Fish &amp; Chips"},
		},
		{
			name:        "collapsing hides items",
			act:         func() { ctrl.Toggle("appetizers") },
			contains:    []string{"Appetizers", `aria-expanded="false"`},
			notContains: []string{"Loaded Nachos"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.act()
			html := render(t, sections.MenuPanel(ctrl))
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, html, s)
			}
		})
	}
}

func TestMenuPanel_ItemWithoutImage(t *testing.T) {
	cats := []domain.MenuCategory{{
		ID: "snacks", Name: "Snacks",
		Items: []domain.MenuItem{{ID: "chips", Name: "Chips", Price: "$3"}},
	}}
	html := render(t, sections.MenuPanel(menu.New(cats, nil)))

	assert.Contains(t, html, "Chips")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, `class="tags"`)
}

func TestGalleries_LabelsRoundTrip(t *testing.T) {
	atmosphere := []domain.GalleryImage{
		{ID: 1, Src: "/a.jpg", Alt: "Pool & Darts", Category: domain.CategoryGames, Caption: "Rack 'em"},
		{ID: 2, Src: "/b.jpg", Alt: "Dance floor", Category: domain.CategoryNightlife},
	}
	staff := []domain.StaffImage{
		{ID: 7, Src: "/s.jpg", Alt: "Test Staff Member 1", Caption: "Our amazing bartender"},
	}
	team := []domain.TeamMember{
		{ID: 3, ImageURL: "/t.jpg", Name: "Noa", Caption: "Energy"},
		{ID: 4, ImageURL: "/u.jpg", Name: "Colin"},
	}

	tests := []struct {
		name string
		node g.Node
		want []string
	}{
		{"atmosphere", sections.AtmosphereGallery(atmosphere), []string{"Pool &amp; Darts", "Dance floor"}},
		{"staff", sections.StaffGallery(gallery.New(gallery.Staff, staff)), []string{"Test Staff Member 1"}},
		{"team", sections.TeamGallery(team), []string{"Noa", "Colin"}},
		{"pub team", sections.PubTeamGallery(gallery.New(gallery.PubTeam, team)), []string{"Noa", "Colin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, tt.node)
			assert.Equal(t, tt.want, alts(html))
			for _, a := range alts(html) {
				assert.NotEmpty(t, a)
			}
		})
	}
}

func TestAtmosphereGallery_Badges(t *testing.T) {
	html := render(t, sections.AtmosphereGallery(content.Default().Atmosphere))

	assert.Contains(t, html, ">Games</span>")
	assert.Contains(t, html, ">Nightlife</span>")
	assert.Contains(t, html, "Visit Us Today")
	assert.NotContains(t, html, "hx-get", "atmosphere cards do not open a dialog")
}

func TestDefaultGalleries_AllImagesLabelled(t *testing.T) {
	c := content.Default()
	html := render(t, g.Group{
		sections.AtmosphereGallery(c.Atmosphere),
		sections.StaffGallery(gallery.New(gallery.Staff, c.Staff)),
		sections.TeamGallery(c.Team),
		sections.PubTeamGallery(gallery.New(gallery.PubTeam, c.PubTeam)),
	})

	got := alts(html)
	assert.Len(t, got, len(c.Atmosphere)+len(c.Staff)+len(c.Team)+len(c.PubTeam))
	for _, a := range got {
		assert.NotEmpty(t, strings.TrimSpace(a))
	}
}

func TestGalleryDialog(t *testing.T) {
	staff := []domain.StaffImage{
		{ID: 1, Src: "/test-staff-1.jpg", Alt: "Test Staff Member 1", Caption: "Our amazing bartender"},
		{ID: 2, Src: "/test-staff-2.jpg", Alt: "Test Staff Member 2", Caption: "Always with a smile"},
	}
	gal := gallery.New(gallery.Staff, staff)

	t.Run("closed renders only the container", func(t *testing.T) {
		html := render(t, sections.GalleryDialog(gal))
		assert.Equal(t, `<div id="staff-dialog" class="dialog-root"></div>`, html)
	})

	t.Run("selected item is shown enlarged", func(t *testing.T) {
		require.NoError(t, gal.SelectByID(2))
		html := render(t, sections.GalleryDialog(gal))

		assert.Contains(t, html, `role="dialog"`)
		assert.Contains(t, html, `src="/test-staff-2.jpg"`)
		assert.Contains(t, html, "Always with a smile")
		assert.Contains(t, html, `hx-delete="/galleries/staff/selection"`)
		assert.Contains(t, html, `name="_method" value="DELETE"`)
		assert.NotContains(t, html, "Test Staff Member 1")
	})

	t.Run("grid links open the dialog", func(t *testing.T) {
		html := render(t, sections.StaffGallery(gal))
		assert.Contains(t, html, `href="/galleries/staff/images/1"`)
		assert.Contains(t, html, `hx-get="/galleries/staff/images/1"`)
		assert.Contains(t, html, `hx-target="#staff-dialog"`)
	})

	t.Run("cleared selection closes the dialog", func(t *testing.T) {
		gal.Selection.Clear()
		assert.NotContains(t, render(t, sections.GalleryDialog(gal)), `role="dialog"`)
	})
}

func TestLocation(t *testing.T) {
	loc := domain.Location{
		Address: "123 Custom St",
		Phone:   "(555) 123-4567",
		Landmarks: []domain.Landmark{
			{Name: "Bell Center", Distance: "0.5 km", Description: "Home of the Montreal Canadiens"},
		},
	}
	html := render(t, sections.Location(loc, content.MapEmbedURL))

	assert.Contains(t, html, "destination=123%20Custom%20St")
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, `href="tel:5551234567" target="_self"`)
	assert.Contains(t, html, "0.5 km away")
	assert.Contains(t, html, `title="Home of the Montreal Canadiens"`)
	assert.Contains(t, html, `<iframe src="https://www.google.com/maps/embed?`)
	assert.Contains(t, html, "1240%20Crescent%20St", "map embed stays fixed")
	assert.Contains(t, html, `src="`+sections.QRPath+`"`)
	assert.Contains(t, html, "Get Directions")
	assert.Contains(t, html, "Call Now")
}

func TestLocation_NoLandmarks(t *testing.T) {
	html := render(t, sections.Location(domain.Location{Address: "a", Phone: "1"}, content.MapEmbedURL))
	assert.NotContains(t, html, "Nearby Attractions")
}

func TestHero(t *testing.T) {
	hero := content.Default().Hero
	html := render(t, sections.Hero(hero))

	assert.Contains(t, html, "<h1>Mad Hatter Pub</h1>")
	assert.Contains(t, html, "Montreal&#39;s Ultimate Nightlife Destination")
	assert.Contains(t, html, `href="#menu"`)
	assert.Contains(t, html, "Explore Our Pub")
	assert.Contains(t, html, `id="hero-slide-4"`)
	assert.Contains(t, html, `aria-label="Slide 1 of 4"`)
	assert.Contains(t, html, "Open daily until 3:00 AM")

	t.Run("single image has no slide dots", func(t *testing.T) {
		html := render(t, sections.Hero(domain.Hero{Images: []string{"/one.jpg"}, Title: "T"}))
		assert.NotContains(t, html, "hero-dots")
		assert.NotContains(t, html, "btn-cta")
	})
}

func TestChrome(t *testing.T) {
	loc := content.Default().Location

	header := render(t, sections.SiteHeader(content.LogoURL))
	for _, anchor := range []string{"#home", "#menu", "#atmosphere", "#location", "#contact"} {
		assert.Contains(t, header, `href="`+anchor+`"`)
	}
	assert.Contains(t, header, `alt="Mad Hatter Pub Logo"`)

	footer := render(t, sections.SiteFooter(content.LogoURL, 2026))
	assert.Contains(t, footer, "© 2026 Mad Hatter Pub. All rights reserved.")
	assert.Contains(t, footer, "11:00 AM - 3:00 AM")

	contact := render(t, sections.Contact(loc))
	assert.Contains(t, contact, `href="tel:5143931240"`)
	assert.Contains(t, contact, `href="mailto:info@madhattermtl.ca"`)

	about := render(t, sections.About())
	assert.Contains(t, about, "Welcome to Mad Hatter Pub")
}

func TestHome(t *testing.T) {
	c := content.Default()
	staff := gallery.New(gallery.Staff, c.Staff)
	require.NoError(t, staff.SelectByID(c.Staff[0].ID))

	var cached []string
	html := render(t, sections.Home(sections.HomeProps{
		Content: c,
		Menu:    menu.New(c.Menu.Food, c.Menu.Drinks),
		Staff:   staff,
		PubTeam: gallery.New(gallery.PubTeam, c.PubTeam),
		Year:    2026,
		Cache: func(name string, build func() g.Node) g.Node {
			cached = append(cached, name)
			return build()
		},
	}))

	for _, id := range []string{"home", "menu", "atmosphere", "staff", "team", "pub-team", "location", "contact"} {
		assert.Contains(t, html, `id="`+id+`"`)
	}
	assert.Contains(t, html, "Loaded Nachos")
	assert.Contains(t, html, `role="dialog"`, "stored staff selection is open")
	assert.Equal(t, []string{"header", "hero", "about", "atmosphere", "team", "location", "contact", "footer-2026"}, cached)
}

func TestToggleURL(t *testing.T) {
	assert.Equal(t, "/menu/categories/mains/toggle", sections.ToggleURL("mains"))
	assert.Equal(t, "/menu/categories/wings,ribs/toggle", sections.ToggleURL("wings,ribs"))
	assert.Equal(t, "/menu/categories/bar%2Fsnacks/toggle", sections.ToggleURL("bar/snacks"))
}
