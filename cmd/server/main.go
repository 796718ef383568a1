// Package main is the entry point for the SkyRoute flight search service.
//
//	@title			SkyRoute Flight Search API
//	@version		1.0.0
//	@description	Flight offer search and airport autocomplete backed by the Amadeus self-service APIs.
//
//	@host			localhost:3001
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skyroute/skyroute/docs"

	"github.com/skyroute/skyroute/internal/adapter/amadeus"
	apihttp "github.com/skyroute/skyroute/internal/adapter/http"
	"github.com/skyroute/skyroute/internal/adapter/http/middleware"
	"github.com/skyroute/skyroute/internal/config"
	"github.com/skyroute/skyroute/internal/infrastructure/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "skyroute",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("mock", cfg.Amadeus.MockMode).
		Msg("configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log, cfg.Server.CORSOrigin)

	var provider apihttp.Provider
	if cfg.Amadeus.MockMode {
		log.Warn().Msg("mock mode enabled, serving static data and no upstream calls")
		provider = amadeus.NewMockSource()
	} else {
		client := amadeus.NewClient(cfg.Amadeus, log)
		provider = amadeus.NewSource(client, log)
	}

	handler := apihttp.NewHandler(provider, cfg.Amadeus.MockMode, log)
	apihttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown blocks until an interrupt arrives, then drains in-flight
// requests before exiting.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
