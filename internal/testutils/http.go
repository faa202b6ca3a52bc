package testutils

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/madhatterpub/site/internal/config"
	"github.com/madhatterpub/site/internal/content"
	"github.com/madhatterpub/site/internal/handlers"
	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/registry"
	"github.com/madhatterpub/site/internal/rendering"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const sessionSecret = "a-very-secret-key-for-testing-!"

// Harness is an echo instance wired like the server, minus the modules.
// Modules are booted under /<Name> with Boot.
type Harness struct {
	E        *echo.Echo
	Registry *registry.Registry
	Store    *content.Store
}

// NewHarness creates a harness serving the built-in content.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	store, err := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	reg := registry.New(&config.Config{})
	registry.Set(reg, registry.ContentStoreKey, store)

	e := echo.New()
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm("_method"),
	}))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()

	return &Harness{E: e, Registry: reg, Store: store}
}

// Boot registers and boots m the way the server does.
func (h *Harness) Boot(t *testing.T, m module.Module) {
	t.Helper()
	require.NoError(t, m.Register(h.Registry))
	require.NoError(t, m.Boot(context.Background(), h.E.Group("/"+m.Name()), h.Registry))
}

// Client sends requests to the harness and carries the session cookie
// between them, like a browser would.
type Client struct {
	h       *Harness
	cookies map[string]*http.Cookie
}

// Client returns a new visitor with an empty session.
func (h *Harness) Client() *Client {
	return &Client{h: h, cookies: map[string]*http.Cookie{}}
}

// Request performs method on target. form, when not nil, is sent url-encoded.
func (c *Client) Request(method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.h.E.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

// HTMX is a shorthand for an htmx request without a body.
func (c *Client) HTMX(method, target string) *httptest.ResponseRecorder {
	return c.Request(method, target, nil, true)
}
