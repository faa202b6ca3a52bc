package gallery

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/gallery"
	"github.com/madhatterpub/site/internal/handlers"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/view"
	"github.com/madhatterpub/site/web/src/templates/sections"
	g "maragu.dev/gomponents"
)

// Handler opens and closes gallery dialogs. The selection lives in the
// visitor's session, one entry per gallery.
type Handler struct {
	store   *content.Store
	metrics *metrics.SiteMetrics
}

// NewHandler creates a new gallery Handler. m may be nil.
func NewHandler(store *content.Store, m *metrics.SiteMetrics) *Handler {
	return &Handler{store: store, metrics: m}
}

// dialog is one dialog gallery reduced to what the handlers need.
type dialog struct {
	name     string
	selectID func(id int) error
	clear    func()
	render   func() g.Node
}

func (h *Handler) dialog(name string) (dialog, error) {
	if err := gallery.CheckDialog(name); err != nil {
		return dialog{}, err
	}
	c := h.store.Current()
	switch name {
	case gallery.Staff:
		return newDialog(gallery.New(name, c.Staff)), nil
	default:
		return newDialog(gallery.New(name, c.PubTeam)), nil
	}
}

func newDialog[T domain.Card](gal *gallery.Gallery[T]) dialog {
	return dialog{
		name:     gal.Name,
		selectID: gal.SelectByID,
		clear:    gal.Selection.Clear,
		render:   func() g.Node { return sections.GalleryDialog(gal) },
	}
}

// Open selects one image and returns the dialog. Any image that was open in
// the same gallery is replaced.
func (h *Handler) Open(c echo.Context) error {
	var req handlers.ImageRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	d, err := h.dialog(req.Gallery)
	if err != nil {
		return handlers.HTTPError(err)
	}
	if err := d.selectID(req.ID); err != nil {
		return handlers.HTTPError(err)
	}

	st := view.LoadState(c)
	st.Selections[d.name] = req.ID
	if h.metrics != nil {
		h.metrics.RecordGalleryOpen(d.name)
	}
	return h.respond(c, st, d)
}

// Close clears the selection of a gallery and returns the empty container.
func (h *Handler) Close(c echo.Context) error {
	var req handlers.GalleryRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	d, err := h.dialog(req.Gallery)
	if err != nil {
		return handlers.HTTPError(err)
	}
	d.clear()

	st := view.LoadState(c)
	delete(st.Selections, d.name)
	if h.metrics != nil {
		h.metrics.RecordGalleryClose(d.name)
	}
	return h.respond(c, st, d)
}

func (h *Handler) respond(c echo.Context, st view.UIState, d dialog) error {
	if err := view.SaveState(c, st); err != nil {
		return err
	}
	if !handlers.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#"+d.name)
	}
	return c.Render(http.StatusOK, "", d.render())
}
