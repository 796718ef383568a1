package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/skyroute/skyroute/internal/infrastructure/logger"
)

// Setup registers the middleware stack in order:
//  1. RequestID, so every later log line can carry the ID
//  2. RequestLogger
//  3. Recover, wrapping the handlers
//  4. CORS, restricted to the configured frontend origin
func Setup(e *echo.Echo, log *logger.Logger, corsOrigin string) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
	e.Use(CORS(corsOrigin))
}

// CORS returns CORS middleware allowing the single configured origin. The
// API is consumed by one known frontend, not arbitrary sites.
func CORS(origin string) echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, RequestIDHeader},
	})
}
