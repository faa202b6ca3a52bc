package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/madhatterpub/site/internal/config"
	"github.com/madhatterpub/site/internal/handlers"
	"github.com/madhatterpub/site/internal/metrics"
	appmiddleware "github.com/madhatterpub/site/internal/middleware"
	"github.com/madhatterpub/site/internal/module"
	"github.com/madhatterpub/site/internal/rendering"
	"github.com/madhatterpub/site/web"
)

// Template modes accepted in APP_TEMPLATES.
const (
	TemplatesEmbed = "embed"
	TemplatesDisk  = "disk"
)

// Dependencies holds everything the server needs. Config, Echo and Home are
// required.
type Dependencies struct {
	Config   config.Provider
	Echo     *echo.Echo
	Renderer *rendering.UniversalRenderer
	Home     *handlers.HomeHandler
	Metrics  *metrics.SiteMetrics
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Renderer *rendering.UniversalRenderer

	homeHandler *handlers.HomeHandler
	metrics     *metrics.SiteMetrics

	mu      sync.Mutex
	modules []module.Module
}

// New configures the echo instance in deps with the site's middleware stack
// and returns a server ready for InitModules and RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Echo == nil {
		return nil, errors.New("server: echo instance is required")
	}
	if deps.Home == nil {
		return nil, errors.New("server: home handler is required")
	}
	if deps.Renderer == nil {
		deps.Renderer = rendering.NewUniversalRenderer()
	}

	e := deps.Echo
	e.HideBanner = true

	// Plain HTML forms can only POST; the hidden _method field carries DELETE.
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm("_method"),
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Validator = handlers.NewValidator()
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	return &Server{
		E:           e,
		Cfg:         deps.Config,
		Renderer:    deps.Renderer,
		homeHandler: deps.Home,
		metrics:     deps.Metrics,
	}, nil
}

// staticFS returns the static assets for the configured template mode.
// "disk" serves web/static from the working directory so edits show up
// without a rebuild.
func staticFS(mode string) (fs.FS, error) {
	if mode == TemplatesDisk {
		return os.DirFS("web/static"), nil
	}
	return fs.Sub(web.FS, "static")
}
