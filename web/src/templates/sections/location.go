package sections

import (
	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/location"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// QRPath is where the directions QR code is served from.
const QRPath = "/location/directions.png"

func callHref(phone string) string {
	return location.CallNow(phone).URL
}

// Location renders the map embed, the contact card with the directions and
// call actions, and the nearby landmarks. mapEmbedURL is used verbatim and
// does not follow loc.Address.
func Location(loc domain.Location, mapEmbedURL string) g.Node {
	directions := location.GetDirections(loc.Address)
	call := location.CallNow(loc.Phone)

	return Section(ID(AnchorLocation), Class("location"),
		Div(Class("container"),
			heading("Find Us", "Conveniently situated near the Bell Center, McGill, Concordia, and major hotels, we welcome a diverse crowd of patrons, from students to locals and tourists alike."),
			Div(Class("location-grid"),
				Div(Class("map"),
					IFrame(
						Src(mapEmbedURL),
						Title("Mad Hatter Pub Location"),
						g.Attr("loading", "lazy"),
						g.Attr("referrerpolicy", "no-referrer-when-downgrade"),
						g.Attr("allowfullscreen"),
					),
					Div(Class("map-overlay"),
						H3(g.Text(brandName)),
						P(g.Text("Montreal's Premier Nightlife Destination")),
					),
				),
				Div(Class("location-side"),
					Div(Class("card"),
						H3(g.Text("Contact Information")),
						infoRow("Address:", loc.Address),
						infoRow("Phone:", loc.Phone),
						infoRow("Hours:", "Open daily until 3:00 AM"),
						Div(Class("actions"),
							A(Class("btn"), Href(directions.URL), Target(directions.Target), Rel("noopener noreferrer"),
								g.Text("Get Directions")),
							A(Class("btn btn-outline"), Href(call.URL), Target(call.Target),
								g.Text("Call Now")),
						),
						Figure(Class("qr"),
							Img(Src(QRPath), Alt("QR code with directions to "+loc.Address), Width("160"), Height("160"), g.Attr("loading", "lazy")),
							FigCaption(g.Text("Scan for directions")),
						),
					),
					g.If(len(loc.Landmarks) > 0,
						Div(Class("landmarks"),
							H3(g.Text("Nearby Attractions")),
							Ul(g.Map(loc.Landmarks, landmark)),
						),
					),
				),
			),
		),
	)
}

func infoRow(label, value string) g.Node {
	return Div(Class("info-row"),
		P(Class("info-label"), g.Text(label)),
		P(Class("muted"), g.Text(value)),
	)
}

func landmark(l domain.Landmark) g.Node {
	return Li(Class("card landmark"), Title(l.Description), g.Attr("tabindex", "0"),
		H4(g.Text(l.Name)),
		P(Class("muted"), g.Text(l.Distance+" away")),
	)
}
