// Package response provides the JSON envelopes used by the search API.
// Successful responses wrap their payload in {"data": ...}; failures carry a
// plain {"error": "..."} message.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataEnvelope wraps a successful payload.
type DataEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope carries a human-readable failure message.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// Messages used across endpoints.
const (
	MsgMissingKeyword     = "Query parameter q is required"
	MsgRateLimited        = "Rate limit exceeded. Please try again in a moment."
	MsgMissingCredentials = "Flight data provider credentials are not configured"
	MsgSearchFailed       = "Failed to fetch flights"
	MsgAirportsFailed     = "Failed to fetch airports"
)

// Data writes a 200 OK response with the payload wrapped in a data envelope.
func Data(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, &DataEnvelope{Data: payload})
}

// OK writes a 200 OK response with the payload as-is, for endpoints whose
// top-level shape is richer than a single data field.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Err writes an error response with the given status and message.
func Err(c echo.Context, status int, message string) error {
	return c.JSON(status, &ErrorEnvelope{Error: message})
}

// BadRequest writes a 400 Bad Request with the given message.
func BadRequest(c echo.Context, message string) error {
	return Err(c, http.StatusBadRequest, message)
}

// TooManyRequests writes a 429 with the standard rate-limit message.
func TooManyRequests(c echo.Context) error {
	return Err(c, http.StatusTooManyRequests, MsgRateLimited)
}

// InternalError writes a 500 with the given message.
func InternalError(c echo.Context, message string) error {
	return Err(c, http.StatusInternalServerError, message)
}
