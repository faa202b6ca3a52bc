package sections

import (
	"fmt"

	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/gallery"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// AtmosphereGallery is the photo grid of the pub itself. Cards carry a
// category badge and do not open a dialog.
func AtmosphereGallery(images []domain.GalleryImage) g.Node {
	return Section(ID(gallery.Atmosphere), Class("gallery"),
		heading("Experience Our Atmosphere", "Step into the wonderland of Mad Hatter Pub where games, laughter, and unforgettable nights await."),
		Div(Class("gallery-grid"),
			g.Map(images, func(img domain.GalleryImage) g.Node {
				var badge g.Node
				if img.Category != "" {
					badge = Span(Class("badge badge-primary"), g.Text(img.Category.DisplayName()))
				}
				return Article(Class("card gallery-card"), cardBody(img, "landscape", badge))
			}),
		),
		Div(Class("center gallery-cta"),
			P(Class("muted"), g.Text("Come experience the magic for yourself!")),
			A(Class("btn"), Href("#"+AnchorLocation), g.Text("Visit Us Today")),
		),
	)
}

// TeamGallery lists the named portraits of the bar staff.
func TeamGallery(members []domain.TeamMember) g.Node {
	return Section(ID(gallery.Team), Class("gallery"),
		heading("Our Mad Team", "Meet the faces behind the magic at Mad Hatter Pub."),
		Div(Class("gallery-grid"),
			g.Map(members, func(m domain.TeamMember) g.Node {
				return Article(Class("card gallery-card"), cardBody(m, "square", nil))
			}),
		),
	)
}

// StaffGallery is the clickable staff photo grid with its dialog.
func StaffGallery(gal *gallery.Gallery[domain.StaffImage]) g.Node {
	return dialogGallery(gal, "landscape",
		"Meet Our Team", "The friendly faces behind Mad Hatter Pub who make every visit special.")
}

// PubTeamGallery is the clickable portrait grid of the whole team.
func PubTeamGallery(gal *gallery.Gallery[domain.TeamMember]) g.Node {
	return dialogGallery(gal, "square",
		"Our Mad Team", "The friendly faces that make Mad Hatter Pub the best place in town.")
}

func dialogGallery[T domain.Card](gal *gallery.Gallery[T], aspect, title, lead string) g.Node {
	return Section(ID(gal.Name), Class("gallery"),
		heading(title, lead),
		Div(Class("gallery-grid"),
			g.Map(gal.Items, func(item T) g.Node {
				url := imageURL(gal.Name, item.Key())
				return Article(Class("card gallery-card clickable"),
					A(Class("card-link"), Href(url),
						hx.Get(url),
						hx.Target("#"+DialogID(gal.Name)),
						hx.Swap("outerHTML"),
						Aria("haspopup", "dialog"),
						cardBody(item, aspect, nil),
					),
				)
			}),
		),
		GalleryDialog(gal),
	)
}

// GalleryDialog is the enlarged view of the selected item. With nothing
// selected it renders only the empty container that htmx swaps into.
func GalleryDialog[T domain.Card](gal *gallery.Gallery[T]) g.Node {
	item, ok := gal.Selection.Selected()
	if !ok {
		return Div(ID(DialogID(gal.Name)), Class("dialog-root"))
	}

	clearURL := "/galleries/" + gal.Name + "/selection"
	return Div(ID(DialogID(gal.Name)), Class("dialog-root open"),
		Div(Class("dialog-backdrop"),
			hx.Delete(clearURL),
			hx.Target("#"+DialogID(gal.Name)),
			hx.Swap("outerHTML"),
			hx.Trigger("click target:.dialog-backdrop, keyup[key=='Escape'] from:body"),
			Div(Class("dialog"), Role("dialog"), Aria("modal", "true"), Aria("label", item.Label()),
				Img(Src(item.ImageSource()), Alt(item.Label())),
				Div(Class("dialog-caption"),
					H3(g.Text(item.Label())),
					g.If(item.CaptionText() != "", P(g.Text(item.CaptionText()))),
				),
				actionForm("DELETE", clearURL, "#"+DialogID(gal.Name),
					Class("dialog-close"), Aria("label", "Close"), g.Text("×"),
				),
			),
		),
	)
}

// DialogID is the id of a gallery's dialog container.
func DialogID(galleryName string) string {
	return galleryName + "-dialog"
}

func imageURL(galleryName string, id int) string {
	return fmt.Sprintf("/galleries/%s/images/%d", galleryName, id)
}

// cardBody is the image with its hover caption and the label underneath.
func cardBody(c domain.Card, aspect string, badge g.Node) g.Node {
	return g.Group{
		Div(Class("card-media "+aspect),
			Img(Src(c.ImageSource()), Alt(c.Label()), g.Attr("loading", "lazy")),
			g.If(c.CaptionText() != "", Div(Class("card-caption"), P(g.Text(c.CaptionText())))),
		),
		Div(Class("card-footer"),
			H3(g.Text(c.Label())),
			badge,
		),
	}
}
