package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const brandName = "Mad Hatter Pub"

func brand(logoURL string) g.Node {
	return A(Class("brand"), Href("#"+AnchorHome),
		Img(Class("brand-logo"), Src(logoURL), Alt(brandName+" Logo")),
		Span(Class("brand-name"), g.Text(brandName)),
	)
}

func navItems() g.Node {
	return g.Map(navLinks, func(l navLink) g.Node {
		return A(Href("#"+l.anchor), g.Text(l.label))
	})
}

// SiteHeader is the fixed top bar with the logo and the anchor navigation. On
// small screens the links collapse into a disclosure widget.
func SiteHeader(logoURL string) g.Node {
	return Header(Class("site-header"),
		Div(Class("container header-inner"),
			brand(logoURL),
			Nav(Class("site-nav"), Aria("label", "Main"), navItems()),
			Details(Class("site-nav-mobile"),
				Summary(Class("btn btn-outline"), g.Text("Menu")),
				Nav(Aria("label", "Mobile"), navItems()),
			),
		),
	)
}

// SiteFooter shows the opening hours, quick links and the copyright line.
func SiteFooter(logoURL string, year int) g.Node {
	return Footer(Class("site-footer"),
		Div(Class("container footer-grid"),
			Div(
				brand(logoURL),
				P(Class("muted"), g.Text("Your go-to spot for unwinding with friends, dancing the night away, or enjoying some friendly competition.")),
			),
			Div(
				H3(g.Text("Hours")),
				Ul(Class("hours"),
					Li(Span(g.Text("Monday - Sunday")), Span(g.Text("11:00 AM - 3:00 AM"))),
					Li(Span(g.Text("Food Service")), Span(g.Text("Until Midnight"))),
				),
			),
			Div(
				H3(g.Text("Quick Links")),
				Ul(Class("quick-links"), g.Map(navLinks, func(l navLink) g.Node {
					return Li(A(Href("#"+l.anchor), g.Text(l.label)))
				})),
			),
		),
		P(Class("copyright muted"),
			g.Text("© "+strconv.Itoa(year)+" "+brandName+". All rights reserved."),
		),
	)
}
