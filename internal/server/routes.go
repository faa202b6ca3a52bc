package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() error {
	s.E.GET("/", s.homeHandler.HomeGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	if s.metrics != nil {
		s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{
			ErrorHandling: promhttp.HTTPErrorOnError,
		})))
	}

	assets, err := staticFS(s.Cfg.GetTemplatesMode())
	if err != nil {
		return fmt.Errorf("failed to open static assets: %w", err)
	}
	s.E.StaticFS("/static", assets)
	return nil
}
