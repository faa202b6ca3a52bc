package menu_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/metrics"
	"github.com/madhatterpub/site/internal/modules/menu"
	"github.com/madhatterpub/site/internal/registry"
	"github.com/madhatterpub/site/internal/testutils"
	"github.com/madhatterpub/site/web/src/templates/sections"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*testutils.Client, *metrics.SiteMetrics) {
	t.Helper()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	h := testutils.NewHarness(t)
	h.Boot(t, menu.New(menu.Dependencies{Metrics: m}))
	return h.Client(), m
}

func TestMenu_DefaultPanel(t *testing.T) {
	client, _ := setup(t)

	rec := client.HTMX(http.MethodGet, "/menu")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="menu-panel"`)
	assert.Contains(t, body, "Loaded Nachos")
	assert.NotContains(t, body, "Mad Hatter Burger")
	assert.NotContains(t, body, "Wonderland Martini")
}

func TestMenu_SwitchTab(t *testing.T) {
	client, m := setup(t)

	rec := client.HTMX(http.MethodPost, "/menu/tab/drinks")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wonderland Martini")
	assert.NotContains(t, rec.Body.String(), "Loaded Nachos")
	assert.Equal(t, 1.0, testutils.CounterValue(t, m.Registry(), "madhatter_menu_tab_switches_total", map[string]string{"tab": "drinks"}))

	t.Run("tab survives in the session", func(t *testing.T) {
		rec := client.HTMX(http.MethodGet, "/menu")
		assert.Contains(t, rec.Body.String(), "Wonderland Martini")
	})

	t.Run("switching back resets the expansion", func(t *testing.T) {
		rec := client.HTMX(http.MethodPost, "/menu/tab/food")
		assert.Contains(t, rec.Body.String(), "Loaded Nachos")
		assert.NotContains(t, rec.Body.String(), "Mad Hatter Burger")
	})
}

func TestMenu_UnknownTab(t *testing.T) {
	client, _ := setup(t)

	rec := client.HTMX(http.MethodPost, "/menu/tab/desserts")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenu_Toggle(t *testing.T) {
	client, m := setup(t)

	rec := client.HTMX(http.MethodPost, "/menu/categories/mains/toggle")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loaded Nachos")
	assert.Contains(t, rec.Body.String(), "Mad Hatter Burger")
	assert.Equal(t, 1.0, testutils.CounterValue(t, m.Registry(), "madhatter_menu_category_toggles_total", map[string]string{"tab": "food", "state": "expanded"}))

	rec = client.HTMX(http.MethodPost, "/menu/categories/appetizers/toggle")
	assert.NotContains(t, rec.Body.String(), "Loaded Nachos")
	assert.Contains(t, rec.Body.String(), "Mad Hatter Burger")
	assert.Equal(t, 1.0, testutils.CounterValue(t, m.Registry(), "madhatter_menu_category_toggles_total", map[string]string{"tab": "food", "state": "collapsed"}))

	t.Run("all collapsed survives a reload", func(t *testing.T) {
		client.HTMX(http.MethodPost, "/menu/categories/mains/toggle")
		rec := client.HTMX(http.MethodGet, "/menu")
		assert.NotContains(t, rec.Body.String(), "Loaded Nachos")
		assert.NotContains(t, rec.Body.String(), "Mad Hatter Burger")
	})
}

func TestMenu_ToggleUnknownCategoryIsNoop(t *testing.T) {
	client, _ := setup(t)

	before := client.HTMX(http.MethodGet, "/menu").Body.String()
	rec := client.HTMX(http.MethodPost, "/menu/categories/cocktails/toggle")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before, rec.Body.String())
}

func TestMenu_ToggleFollowsPostedTab(t *testing.T) {
	client, _ := setup(t)

	// The visitor's page shows drinks although the session was never told.
	rec := client.Request(http.MethodPost, "/menu/categories/beers/toggle", url.Values{"tab": {"drinks"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wonderland Martini")
	assert.Contains(t, rec.Body.String(), "Mad Hatter IPA")
}

func TestMenu_PlainFormRedirects(t *testing.T) {
	client, _ := setup(t)

	rec := client.Request(http.MethodPost, "/menu/tab/drinks", url.Values{}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#menu", rec.Header().Get("Location"))

	rec = client.HTMX(http.MethodGet, "/menu")
	assert.Contains(t, rec.Body.String(), "Wonderland Martini")
}

func TestMenu_ToggleCategoryIDsWithSeparators(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/content.yaml", []byte(`
menu:
  food:
    - id: starters
      name: Starters
      items:
        - {id: bread, name: Garlic Bread, price: "$6"}
    - id: wings,ribs
      name: Wings and Ribs
      items:
        - {id: wings, name: Buffalo Wings, price: "$14"}
    - id: bar/snacks
      name: Bar Snacks
      items:
        - {id: pretzel, name: Giant Pretzel, price: "$9"}
`), 0o644))
	store, err := content.NewStore(fs, "/content.yaml")
	require.NoError(t, err)

	h := testutils.NewHarness(t)
	registry.Set(h.Registry, registry.ContentStoreKey, store)
	h.Boot(t, menu.New(menu.Dependencies{}))
	client := h.Client()

	panel := client.HTMX(http.MethodGet, "/menu").Body.String()
	assert.Contains(t, panel, `action="/menu/categories/wings,ribs/toggle"`)
	assert.Contains(t, panel, `action="/menu/categories/bar%2Fsnacks/toggle"`)

	for _, id := range []string{"wings,ribs", "bar/snacks"} {
		rec := client.HTMX(http.MethodPost, sections.ToggleURL(id))
		require.Equal(t, http.StatusOK, rec.Code, id)
	}

	rec := client.HTMX(http.MethodGet, "/menu")
	assert.Contains(t, rec.Body.String(), "Garlic Bread")
	assert.Contains(t, rec.Body.String(), "Buffalo Wings")
	assert.Contains(t, rec.Body.String(), "Giant Pretzel")
}
