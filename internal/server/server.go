package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pscheid92/historymap/internal/config"
	"github.com/pscheid92/historymap/internal/domain"
	"github.com/pscheid92/historymap/internal/errors"
)

// RegionProvider supplies the catalogue of known regions.
type RegionProvider interface {
	Regions() []domain.Region
	RegionByName(name string) (domain.Region, bool)
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	atlas     RegionProvider
	resolver  domain.RegionResolver
	startTime time.Time
}

func NewServer(cfg *config.Config, atlas RegionProvider, resolver domain.RegionResolver) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOriginList(),
	}))
	e.Use(errors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		atlas:     atlas,
		resolver:  resolver,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
