package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/itznotaditya/voyant/internal/config"
	"github.com/itznotaditya/voyant/internal/geocode"
	"github.com/itznotaditya/voyant/internal/orchestrator"
	"github.com/itznotaditya/voyant/internal/places"
	"github.com/itznotaditya/voyant/internal/timezone"
	"github.com/itznotaditya/voyant/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	orchestrator  *orchestrator.Orchestrator
	placesService places.Service
	cfg           *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize collaborator services
	geocodeSvc := geocode.NewGeocodeService(logger)
	weatherSvc := weather.NewWeatherService(logger)
	placesSvc := places.NewPlacesService(cfg, logger)

	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:        router,
		logger:        logger,
		orchestrator:  orchestrator.New(cfg, logger, geocodeSvc, weatherSvc, placesSvc, tzSvc),
		placesService: placesSvc,
		cfg:           cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
