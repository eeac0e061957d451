package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Root - service banner
	s.echo.GET("/", s.handleRoot)

	// Map API
	s.echo.GET("/api/map/:year", s.handleMap)
	s.echo.GET("/api/region/:year/:region_name", s.handleRegion)
}
