package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps test runs quick.
var fastConfig = Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0

	err := Do(context.Background(), func() error {
		calls++
		return nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0

	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	boom := errors.New("boom")

	err := Do(context.Background(), func() error {
		calls++
		return boom
	}, fastConfig)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	calls := 0

	err := Do(context.Background(), func() error {
		calls++
		return NewPermanent(errors.New("bad request"))
	}, fastConfig)

	require.Error(t, err)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, 1, calls)
}

func TestDo_RetryIfPredicate(t *testing.T) {
	notRetryable := errors.New("fatal")
	calls := 0

	cfg := fastConfig
	cfg.RetryIf = func(err error) bool { return !errors.Is(err, notRetryable) }

	err := Do(context.Background(), func() error {
		calls++
		return notRetryable
	}, cfg)

	assert.ErrorIs(t, err, notRetryable)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func() error { return errors.New("never retried") }, fastConfig)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	calls := 0

	got, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestNewPermanent_NilPassthrough(t *testing.T) {
	assert.NoError(t, NewPermanent(nil))
}

func TestRateLimitConfig_Waits(t *testing.T) {
	// Three retries after the initial attempt, doubling from 2s and capped
	// at 8s: 2s, 4s, 8s.
	assert.Equal(t, 4, RateLimitConfig.MaxAttempts)
	assert.Equal(t, 2*time.Second, RateLimitConfig.InitialDelay)
	assert.Equal(t, 8*time.Second, RateLimitConfig.MaxDelay)
	assert.Zero(t, RateLimitConfig.JitterFactor)
}
