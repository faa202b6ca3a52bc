package sections

import (
	"fmt"
	"net/url"

	"github.com/madhatterpub/site/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// MenuPanelID is the element swapped by every menu interaction.
const MenuPanelID = "menu-panel"

// MenuState is the read side of the menu controller.
type MenuState interface {
	ActiveTab() domain.Tab
	Categories() []domain.MenuCategory
	IsExpanded(id string) bool
}

// MenuSection is the menu block with its heading.
func MenuSection(m MenuState) g.Node {
	return Section(ID(AnchorMenu), Class("menu"),
		Div(Class("container"),
			heading("Our Menu", "Indulge in our mouthwatering food menu available until midnight, sip on our expertly crafted cocktails, or choose from our extensive selection of beers."),
			MenuPanel(m),
		),
	)
}

// MenuPanel renders the tab strip and the categories of the active tab. Only
// expanded categories render their items.
func MenuPanel(m MenuState) g.Node {
	active := m.ActiveTab()

	return Div(ID(MenuPanelID), Class("menu-panel"),
		Div(Class("tabs"), Role("tablist"),
			g.Map(domain.Tabs, func(t domain.Tab) g.Node {
				return actionForm("POST", "/menu/tab/"+string(t), "#"+MenuPanelID,
					Role("tab"),
					ID("menu-tab-"+string(t)),
					Aria("selected", boolAttr(t == active)),
					Class(tabClass(t == active)),
					g.Text(t.Title()),
				)
			}),
		),
		Div(Class("tab-panel tab-panel-"+string(active)), Role("tabpanel"), Aria("labelledby", "menu-tab-"+string(active)),
			g.If(active == domain.TabFood,
				Div(Class("center"), Span(Class("badge badge-outline"), g.Text("Available until midnight"))),
			),
			g.Map(m.Categories(), func(c domain.MenuCategory) g.Node {
				return category(c, active, m.IsExpanded(c.ID))
			}),
		),
	)
}

// ToggleURL is the endpoint that opens or closes category id. The id is
// escaped as one path segment.
func ToggleURL(id string) string {
	return "/menu/categories/" + url.PathEscape(id) + "/toggle"
}

func category(c domain.MenuCategory, tab domain.Tab, expanded bool) g.Node {
	regionID := "menu-category-" + c.ID

	return Div(Class("accordion-item"),
		H3(Class("accordion-heading"),
			actionForm("POST", ToggleURL(c.ID), "#"+MenuPanelID,
				Class("accordion-trigger"),
				Aria("expanded", boolAttr(expanded)),
				Aria("controls", regionID),
				hx.Vals(fmt.Sprintf(`{"tab":%q}`, string(tab))),
				g.Text(c.Name),
			),
		),
		g.If(expanded,
			Div(ID(regionID), Role("region"), Class("menu-grid menu-grid-"+string(tab)),
				g.Map(c.Items, menuItem),
			),
		),
	)
}

func menuItem(it domain.MenuItem) g.Node {
	return Article(Class("card menu-item"),
		g.Iff(it.HasImage(), func() g.Node {
			return Img(Class("menu-item-image"), Src(*it.Image), Alt(it.Name), g.Attr("loading", "lazy"))
		}),
		Div(Class("menu-item-body"),
			Div(Class("menu-item-title"),
				H4(g.Text(it.Name)),
				Span(Class("price"), g.Text(it.Price)),
			),
			P(Class("muted"), g.Text(it.Description)),
			g.If(len(it.Tags) > 0,
				Div(Class("tags"), g.Map(it.Tags, func(tag string) g.Node {
					return Span(Class("badge"), g.Text(tag))
				})),
			),
		),
	)
}

func tabClass(active bool) string {
	if active {
		return "tab active"
	}
	return "tab"
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
