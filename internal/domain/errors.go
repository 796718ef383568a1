package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search system. Callers match these with errors.Is.
var (
	// ErrInvalidRequest indicates the caller supplied invalid search
	// parameters. Wrapped errors carry the field-level detail.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingCredentials indicates the upstream API credentials are not
	// configured. This is fatal at the first upstream call.
	ErrMissingCredentials = errors.New("missing upstream credentials")

	// ErrRateLimited indicates the upstream rejected the request with 429
	// and bounded retries were exhausted.
	ErrRateLimited = errors.New("upstream rate limit exceeded")
)

// UpstreamError is a non-2xx response from the travel-data provider. It keeps
// the status code and body text so the caller can log and map it.
type UpstreamError struct {
	// Status is the HTTP status code returned upstream
	Status int

	// Path is the upstream request path
	Path string

	// Body is the raw response body text
	Body string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream GET %s (%d): %s", e.Path, e.Status, e.Body)
}

// IsUpstreamError checks whether err wraps an UpstreamError and returns it.
func IsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
