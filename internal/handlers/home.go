package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/gallery"
	"github.com/madhatterpub/site/internal/menu"
	"github.com/madhatterpub/site/internal/middleware"
	"github.com/madhatterpub/site/internal/rendering"
	"github.com/madhatterpub/site/internal/view"
	"github.com/madhatterpub/site/web/src/templates/layouts"
	"github.com/madhatterpub/site/web/src/templates/sections"
	g "maragu.dev/gomponents"
)

const pageDescription = "Mad Hatter Pub, Montreal's ultimate nightlife destination: food until midnight, signature cocktails, pool, Jenga and ping pong on Crescent Street."

// PageRecorder counts full page renders. *metrics.SiteMetrics satisfies it.
type PageRecorder interface {
	RecordPageRender()
}

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	store    *content.Store
	cache    *rendering.FragmentCache
	recorder PageRecorder
	baseURL  string
	now      func() time.Time
}

// HomeOption customizes a HomeHandler.
type HomeOption func(*HomeHandler)

// WithClock replaces time.Now, which only feeds the footer year.
func WithClock(now func() time.Time) HomeOption {
	return func(h *HomeHandler) { h.now = now }
}

// WithRecorder counts page renders.
func WithRecorder(r PageRecorder) HomeOption {
	return func(h *HomeHandler) { h.recorder = r }
}

// NewHomeHandler creates a new HomeHandler. cache may be nil.
func NewHomeHandler(store *content.Store, cache *rendering.FragmentCache, baseURL string, opts ...HomeOption) *HomeHandler {
	h := &HomeHandler{store: store, cache: cache, baseURL: baseURL, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HomeGet renders the whole page with the visitor's menu and gallery state.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	st := view.LoadState(c)
	return c.Render(http.StatusOK, "", h.Page(c.Request().Context(), st))
}

// Page builds the home page for st. It needs no request, so the static
// export renders through it as well.
func (h *HomeHandler) Page(ctx context.Context, st view.UIState) templ.Component {
	snap := h.store.Snapshot()
	c, version := snap.Content, snap.Version

	ctrl := menu.New(c.Menu.Food, c.Menu.Drinks)
	ctrl.Restore(st.Tab, st.Expanded)

	staff := gallery.New(gallery.Staff, c.Staff)
	pubTeam := gallery.New(gallery.PubTeam, c.PubTeam)
	restoreSelection(ctx, staff, st)
	restoreSelection(ctx, pubTeam, st)

	if h.recorder != nil {
		h.recorder.RecordPageRender()
	}

	return layouts.Document(
		layouts.Page{Title: c.Hero.Title, Description: pageDescription, BaseURL: h.baseURL},
		sections.Home(sections.HomeProps{
			Content: c,
			Menu:    ctrl,
			Staff:   staff,
			PubTeam: pubTeam,
			Year:    h.now().Year(),
			Cache: func(name string, build func() g.Node) g.Node {
				return h.cache.Fragment(ctx, name, version, build)
			},
		}),
	)
}

// restoreSelection reopens the stored image of gal. An id that no longer
// exists, for instance after a content reload, is dropped.
func restoreSelection[T domain.Labeled](ctx context.Context, gal *gallery.Gallery[T], st view.UIState) {
	id, ok := st.Selected(gal.Name)
	if !ok {
		return
	}
	if err := gal.SelectByID(id); err != nil {
		middleware.FromContext(ctx).Debug("Dropping stale gallery selection", "gallery", gal.Name, "error", err)
	}
}
