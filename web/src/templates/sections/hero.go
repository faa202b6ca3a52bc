package sections

import (
	"fmt"
	"strings"

	"github.com/madhatterpub/site/internal/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero is the full-width banner: a scroll-snap carousel of background images
// under the title, tagline, opening chips and the call to action.
func Hero(h domain.Hero) g.Node {
	return Section(ID(AnchorHome), Class("hero"),
		Div(Class("hero-track"),
			g.Group(g.Map(indexed(h.Images), func(s slide) g.Node {
				return Div(ID(slideID(s.n)), Class("hero-slide"),
					Role("img"), Aria("label", fmt.Sprintf("Slide %d of %d", s.n, len(h.Images))),
					Style(backgroundImage(s.src)),
				)
			})),
		),
		Div(Class("hero-content"),
			H1(g.Text(h.Title)),
			P(Class("hero-tagline"), g.Text(h.Tagline)),
			Div(Class("hero-chips"),
				chip("🕒", "Open daily until 3:00 AM"),
				chip("📍", "Downtown Montreal"),
			),
			g.If(h.CTAText != "",
				A(Class("btn btn-cta"), Href(ctaHref(h.CTAHref)),
					g.Text(h.CTAText), Span(Aria("hidden", "true"), g.Text(" →")),
				),
			),
		),
		g.If(len(h.Images) > 1,
			Nav(Class("hero-dots"), Aria("label", "Slides"),
				g.Group(g.Map(indexed(h.Images), func(s slide) g.Node {
					return A(Href("#"+slideID(s.n)), Aria("label", fmt.Sprintf("Go to slide %d", s.n)))
				})),
			),
		),
	)
}

type slide struct {
	n   int
	src string
}

func indexed(images []string) []slide {
	slides := make([]slide, len(images))
	for i, src := range images {
		slides[i] = slide{n: i + 1, src: src}
	}
	return slides
}

func slideID(n int) string {
	return fmt.Sprintf("hero-slide-%d", n)
}

func backgroundImage(src string) string {
	return fmt.Sprintf("background-image: url('%s')", strings.ReplaceAll(src, "'", "%27"))
}

func ctaHref(href string) string {
	if href == "" {
		return "#" + AnchorMenu
	}
	return href
}
