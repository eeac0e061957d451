package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/historymap/internal/version"
)

func (s *Server) handleHealth(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"version": version.Get().Version,
		"uptime":  uptime,
	})
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "HistoryMap API",
		"version": version.Get().Version,
	})
}
