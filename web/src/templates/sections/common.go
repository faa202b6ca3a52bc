// Package sections holds the gomponents markup of every block on the home
// page. Functions take plain data and never read request state themselves.
package sections

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Anchor ids of the top-level page sections.
const (
	AnchorHome       = "home"
	AnchorMenu       = "menu"
	AnchorAtmosphere = "atmosphere"
	AnchorLocation   = "location"
	AnchorContact    = "contact"
)

type navLink struct {
	anchor string
	label  string
}

var navLinks = []navLink{
	{AnchorHome, "Home"},
	{AnchorMenu, "Menu"},
	{AnchorAtmosphere, "Atmosphere"},
	{AnchorLocation, "Location"},
	{AnchorContact, "Contact"},
}

func heading(title, lead string) g.Node {
	return Div(Class("section-heading"),
		H2(g.Text(title)),
		g.If(lead != "", P(Class("lead"), g.Text(lead))),
	)
}

func chip(icon, text string) g.Node {
	return Span(Class("chip"),
		Span(Class("chip-icon"), Aria("hidden", "true"), g.Text(icon)),
		Span(g.Text(text)),
	)
}

// actionForm wraps an htmx control in a plain form so the interaction still
// works without JavaScript. method is the verb htmx uses; forms always POST
// and carry the real verb in _method.
func actionForm(method, url, target string, button ...g.Node) g.Node {
	var verb g.Node
	switch method {
	case "DELETE":
		verb = hx.Delete(url)
	default:
		verb = hx.Post(url)
	}

	return g.El("form", Method("post"), Action(url), Class("inline-form"),
		g.If(method != "POST", Input(Type("hidden"), Name("_method"), Value(method))),
		Button(Type("submit"), verb, hx.Target(target), hx.Swap("outerHTML"), g.Group(button)),
	)
}
