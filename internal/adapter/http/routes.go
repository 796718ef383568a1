package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes attaches the API routes to the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Root-level health check for load balancers
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/airports", h.Airports)
	api.GET("/flights/search", h.SearchFlights)
}
