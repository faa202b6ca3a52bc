package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/domain"
	"github.com/madhatterpub/site/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

var store = sessions.NewCookieStore([]byte(testSessionSecret))

// runWithSession executes fn inside the session middleware for req and
// returns the recorder so cookies can be carried to the next request.
func runWithSession(t *testing.T, req *http.Request, fn func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	handler := func(c echo.Context) error { fn(c); return nil }
	require.NoError(t, session.Middleware(store)(handler)(e.NewContext(req, rec)))
	return rec
}

func TestLoadState_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	runWithSession(t, req, func(c echo.Context) {
		st := view.LoadState(c)
		assert.Equal(t, domain.TabFood, st.Tab)
		assert.Nil(t, st.Expanded)
		assert.Empty(t, st.Selections)
	})
}

func TestLoadState_WithoutSessionMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, view.DefaultState(), view.LoadState(c))
}

func TestState_RoundTrip(t *testing.T) {
	saved := view.UIState{
		Tab:        domain.TabDrinks,
		Expanded:   []string{"cocktails", "wines"},
		Selections: map[string]int{"staff": 3},
	}

	rec := runWithSession(t, httptest.NewRequest(http.MethodPost, "/", nil), func(c echo.Context) {
		require.NoError(t, view.SaveState(c, saved))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	runWithSession(t, req, func(c echo.Context) {
		st := view.LoadState(c)
		assert.Equal(t, saved, st)

		id, ok := st.Selected("staff")
		assert.True(t, ok)
		assert.Equal(t, 3, id)
		_, ok = st.Selected("pub-team")
		assert.False(t, ok)
	})
}

func TestSaveState_ClearsRemovedSelections(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	runWithSession(t, req, func(c echo.Context) {
		require.NoError(t, view.SaveState(c, view.UIState{
			Tab:        domain.TabFood,
			Selections: map[string]int{"staff": 1, "pub-team": 2},
		}))
		require.NoError(t, view.SaveState(c, view.UIState{
			Tab:        domain.TabFood,
			Expanded:   []string{},
			Selections: map[string]int{"pub-team": 2},
		}))

		st := view.LoadState(c)
		assert.Equal(t, map[string]int{"pub-team": 2}, st.Selections)
		assert.NotNil(t, st.Expanded)
		assert.Empty(t, st.Expanded)
	})
}

func TestState_RoundTripKeepsIDsWithSeparators(t *testing.T) {
	saved := view.UIState{
		Tab:        domain.TabFood,
		Expanded:   []string{"wings,ribs", "bar/snacks", " spaced "},
		Selections: map[string]int{},
	}

	rec := runWithSession(t, httptest.NewRequest(http.MethodPost, "/", nil), func(c echo.Context) {
		require.NoError(t, view.SaveState(c, saved))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	runWithSession(t, req, func(c echo.Context) {
		assert.Equal(t, saved.Expanded, view.LoadState(c).Expanded)
	})
}

func TestState_RoundTripAllCollapsed(t *testing.T) {
	rec := runWithSession(t, httptest.NewRequest(http.MethodPost, "/", nil), func(c echo.Context) {
		require.NoError(t, view.SaveState(c, view.UIState{Tab: domain.TabDrinks, Expanded: []string{}}))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	runWithSession(t, req, func(c echo.Context) {
		st := view.LoadState(c)
		assert.NotNil(t, st.Expanded)
		assert.Empty(t, st.Expanded)
	})
}
