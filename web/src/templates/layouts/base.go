package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HTMXScript is the htmx build the page loads.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Page carries the document-level metadata.
type Page struct {
	Title       string
	Description string
	// BaseURL is the canonical site origin; empty omits the canonical link.
	BaseURL string
}

// Document wraps the page body in the HTML document shell. It is a
// templ.Component so handlers render it through the same path as any other
// component.
func Document(p Page, body ...g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(p, body).Render(w)
	})
}

func document(p Page, body []g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.If(p.Description != "", Meta(Name("description"), Content(p.Description))),
				TitleEl(g.Text(CalculateTitle(p.Title))),
				g.If(p.BaseURL != "", Link(Rel("canonical"), Href(p.BaseURL+"/"))),
				Link(Rel("stylesheet"), Href("/static/site.css")),
				Script(Src(HTMXScript), Defer()),
			),
			Body(g.Group(body)),
		),
	)
}
