package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/skyroute/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs every request on completion with
// method, path, status, duration, and client info. 5xx responses log at error
// level, 4xx at warn, everything else at info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			reqLog := log.WithRequestID(GetRequestID(c))

			event := reqLog.Info()
			switch {
			case res.Status >= 500:
				event = reqLog.Error()
			case res.Status >= 400:
				event = reqLog.Warn()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", duration.Milliseconds()).
				Str("client_ip", c.RealIP()).
				Msg("http request")

			// The error was already handled via c.Error.
			return nil
		}
	}
}
