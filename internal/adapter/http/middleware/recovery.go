package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/skyroute/internal/infrastructure/logger"
)

// Recover returns middleware that recovers from panics in the handler chain,
// logs the panic with its stack trace, and returns a generic 500 so internal
// detail never leaks to the client.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg).
						Str("stack", string(debug.Stack())).
						Msg("panic recovered")

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]string{
							"error": "An unexpected error occurred",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
