package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/handlers"
	"github.com/madhatterpub/site/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// setupErrorHandling installs the central error handler. Expected errors
// (echo.HTTPError) are answered with their status; everything else is
// logged with a stack trace and answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		ctx := c.Request().Context()

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if code >= http.StatusInternalServerError {
				slog.ErrorContext(ctx, "Request failed", "status", code, "error", err, "path", c.Path())
			} else {
				slog.DebugContext(ctx, "Request rejected", "status", code, "error", err, "path", c.Path())
			}
		} else {
			slog.ErrorContext(ctx, "Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Path(),
				"stack_trace", string(debug.Stack()),
			)
		}

		if rerr := respondError(c, code, message); rerr != nil {
			slog.ErrorContext(ctx, "Failed to send error response", "error", rerr)
		}
	}
}

// respondError answers htmx and HEAD requests with a bare status and text,
// and full page loads with a small page linking back home.
func respondError(c echo.Context, code int, message string) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	if handlers.IsHTMX(c) || c.Echo().Renderer == nil {
		return c.String(code, message)
	}

	title := http.StatusText(code)
	page := layouts.Document(layouts.Page{Title: title},
		Main(Class("container error-page"),
			H1(g.Text(title)),
			g.If(message != title, P(g.Text(message))),
			A(Href("/"), Class("btn btn-cta"), g.Text("Back to the pub")),
		),
	)
	return c.Render(code, "", page)
}
