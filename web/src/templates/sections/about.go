package sections

import (
	"github.com/madhatterpub/site/internal/domain"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// About is the welcome block under the hero.
func About() g.Node {
	return Section(Class("about muted-band"),
		Div(Class("container narrow center"),
			H2(g.Text("Welcome to Mad Hatter Pub")),
			P(Class("lead"), g.Text("Looking for the ultimate nightlife destination in downtown Montreal? Look no further than MadHatter Pub, your go-to spot for unwinding with friends, dancing the night away, or enjoying some friendly competition with games like pool, Jenga, or ping pong.")),
			Div(Class("chips"),
				chip("🕒", "Open daily until 3:00 AM"),
				chip("📍", "Downtown Montreal"),
			),
		),
	)
}

// Contact lists the phone number, email address and social links.
func Contact(loc domain.Location) g.Node {
	return Section(ID(AnchorContact), Class("contact muted-band"),
		Div(Class("container narrow center"),
			heading("Contact Us", "Have questions or want to make a reservation? Reach out to us through any of the following channels."),
			Div(Class("contact-grid"),
				Div(Class("card contact-card"),
					Span(Class("contact-icon"), Aria("hidden", "true"), g.Text("☎")),
					H3(g.Text("Phone")),
					A(Href(callHref(loc.Phone)), g.Text(loc.Phone)),
				),
				g.If(loc.Email != "",
					Div(Class("card contact-card"),
						Span(Class("contact-icon"), Aria("hidden", "true"), g.Text("✉")),
						H3(g.Text("Email")),
						A(Href("mailto:"+loc.Email), g.Text(loc.Email)),
					),
				),
			),
			Div(Class("social"),
				A(Href("#"), Aria("label", "Instagram"), g.Text("Instagram")),
				A(Href("#"), Aria("label", "Facebook"), g.Text("Facebook")),
				A(Href("#"), Aria("label", "Twitter"), g.Text("Twitter")),
			),
		),
	)
}
