package menu

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/handlers"
	menuctl "github.com/madhatterpub/site/internal/menu"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/middleware"
	"github.com/madhatterpub/site/internal/view"
	"github.com/madhatterpub/site/web/src/templates/sections"
)

// Handler serves the menu panel. The controller is rebuilt on every request
// from the current content and the visitor's session.
type Handler struct {
	store   *content.Store
	metrics *metrics.SiteMetrics
}

// NewHandler creates a new menu Handler. m may be nil.
func NewHandler(store *content.Store, m *metrics.SiteMetrics) *Handler {
	return &Handler{store: store, metrics: m}
}

func (h *Handler) controller(st view.UIState) *menuctl.Controller {
	c := h.store.Current()
	ctrl := menuctl.New(c.Menu.Food, c.Menu.Drinks)
	ctrl.Restore(st.Tab, st.Expanded)
	return ctrl
}

// Get renders the menu panel as the visitor last left it.
func (h *Handler) Get(c echo.Context) error {
	return c.Render(http.StatusOK, "", sections.MenuPanel(h.controller(view.LoadState(c))))
}

// SetTab switches the active tab. The new tab opens with its first category
// expanded.
func (h *Handler) SetTab(c echo.Context) error {
	var req handlers.TabRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	tab, err := domain.ParseTab(req.Tab)
	if err != nil {
		return handlers.HTTPError(err)
	}

	st := view.LoadState(c)
	st.Tab = tab
	st.Expanded = nil
	ctrl := h.controller(st)

	if h.metrics != nil {
		h.metrics.RecordTabSwitch(string(tab))
	}
	return h.respond(c, st, ctrl)
}

// Toggle opens or closes one category of the active tab. Unknown ids leave
// the panel unchanged.
func (h *Handler) Toggle(c echo.Context) error {
	var req handlers.ToggleRequest
	if err := handlers.BindAndValidate(c, &req); err != nil {
		return err
	}
	// Path params arrive raw when the id needed escaping.
	id, err := url.PathUnescape(req.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id").SetInternal(err)
	}
	req.ID = id

	st := view.LoadState(c)
	ctrl := h.controller(st)
	if req.Tab != "" {
		tab, err := domain.ParseTab(req.Tab)
		if err != nil {
			return handlers.HTTPError(err)
		}
		// The page was rendered for another tab than the session holds.
		if tab != ctrl.ActiveTab() {
			ctrl.SetActiveTab(tab)
		}
	}
	ctrl.Toggle(req.ID)

	st.Tab = ctrl.ActiveTab()
	st.Expanded = ctrl.ExpandedIDs()

	middleware.FromContext(c.Request().Context()).Debug("Toggled menu category",
		"tab", st.Tab, "category", req.ID, "expanded", ctrl.IsExpanded(req.ID))
	if h.metrics != nil {
		h.metrics.RecordToggle(string(st.Tab), ctrl.IsExpanded(req.ID))
	}
	return h.respond(c, st, ctrl)
}

// respond stores st and answers htmx with the new panel. Plain form posts
// are sent back to the page.
func (h *Handler) respond(c echo.Context, st view.UIState, ctrl *menuctl.Controller) error {
	if err := view.SaveState(c, st); err != nil {
		return err
	}
	if !handlers.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#"+sections.AnchorMenu)
	}
	return c.Render(http.StatusOK, "", sections.MenuPanel(ctrl))
}
