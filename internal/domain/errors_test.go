package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamError_Error(t *testing.T) {
	err := &UpstreamError{Status: 502, Path: "/v2/shopping/flight-offers", Body: "bad gateway"}

	assert.Equal(t, "upstream GET /v2/shopping/flight-offers (502): bad gateway", err.Error())
}

func TestIsUpstreamError(t *testing.T) {
	inner := &UpstreamError{Status: 500, Path: "/x", Body: "boom"}
	wrapped := fmt.Errorf("search failed: %w", inner)

	ue, ok := IsUpstreamError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 500, ue.Status)

	_, ok = IsUpstreamError(errors.New("plain"))
	assert.False(t, ok)
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: set AMADEUS_CLIENT_ID", ErrMissingCredentials)

	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.NotErrorIs(t, err, ErrRateLimited)
}
