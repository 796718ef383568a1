// Package amadeus adapts the Amadeus self-service travel APIs to the domain
// model: OAuth2 token management, rate-limit retries, and normalization of
// the raw offer and location payloads.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/skyroute/skyroute/internal/config"
	"github.com/skyroute/skyroute/internal/domain"
	"github.com/skyroute/skyroute/internal/infrastructure/logger"
	"github.com/skyroute/skyroute/internal/infrastructure/retry"
	"github.com/skyroute/skyroute/internal/infrastructure/timeutil"
)

const (
	tokenPath = "/v1/security/oauth2/token"

	// tokenExpirySlack refreshes the token this long before it actually
	// expires, so an in-flight request never carries a dying token.
	tokenExpirySlack = 10 * time.Second
)

// Client is an authenticated HTTP client for the Amadeus APIs. It caches the
// OAuth2 access token until shortly before expiry and retries rate-limited
// requests with exponential backoff.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	clock        timeutil.Clock
	log          *logger.Logger
	retryCfg     retry.Config

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Client from the provider configuration.
func NewClient(cfg config.AmadeusConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		clock:        timeutil.RealClock{},
		log:          log,
		retryCfg:     rateLimitRetryConfig(),
	}
}

func rateLimitRetryConfig() retry.Config {
	cfg := retry.RateLimitConfig
	cfg.RetryIf = func(err error) bool {
		return errors.Is(err, domain.ErrRateLimited)
	}
	return cfg
}

// token returns a valid access token, requesting a new one when the cached
// token is absent or within the expiry slack.
func (c *Client) token(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", domain.ErrMissingCredentials
	}

	c.mu.Lock()
	if c.accessToken != "" && c.clock.Now().Before(c.tokenExpiry.Add(-tokenExpirySlack)) {
		token := c.accessToken
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp.StatusCode, tokenPath, body)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response carried no access token")
	}

	c.mu.Lock()
	c.accessToken = tok.AccessToken
	c.tokenExpiry = c.clock.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.mu.Unlock()

	c.log.Debug().Int("expires_in", tok.ExpiresIn).Msg("refreshed access token")

	return tok.AccessToken, nil
}

// getJSON performs an authenticated GET and decodes the response into out.
// Rate-limited requests are retried with the client's backoff schedule; all
// other failures return immediately.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.getOnce(ctx, path, query)
	}, c.retryCfg)
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			c.log.Warn().Str("path", path).Msg("rate limit retries exhausted")
		}
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) getOnce(ctx context.Context, path string, query url.Values) ([]byte, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(resp.StatusCode, path, body)
	}

	return body, nil
}

// statusError maps a non-2xx upstream response to a domain error. 429 maps to
// the retryable rate-limit sentinel; 400 surfaces the upstream's own detail
// message as an invalid-request error.
func (c *Client) statusError(status int, path string, body []byte) error {
	switch status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: GET %s", domain.ErrRateLimited, path)
	case http.StatusBadRequest:
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.detail() != "" {
			return retry.NewPermanent(fmt.Errorf("%w: %s", domain.ErrInvalidRequest, apiErr.detail()))
		}
		return retry.NewPermanent(fmt.Errorf("%w: upstream rejected the request", domain.ErrInvalidRequest))
	default:
		return retry.NewPermanent(&domain.UpstreamError{
			Status: status,
			Path:   path,
			Body:   strings.TrimSpace(string(body)),
		})
	}
}
