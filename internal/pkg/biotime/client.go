package biotime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hrkit/biotime-bridge-go/internal/config"
	"golang.org/x/time/rate"
)

// Per-call timeouts for the upstream endpoints. Transactions can be heavy on
// large sites, so they get more headroom.
const (
	authTimeout        = 10 * time.Second
	employeeTimeout    = 15 * time.Second
	transactionTimeout = 30 * time.Second
)

// tokenSlack is how long before the token's exp claim we stop trusting it.
const tokenSlack = 30 * time.Second

// Client talks to a BioTime-style time-clock server.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu           sync.Mutex
	token        string
	tokenExpires time.Time
}

// NewClient creates an upstream client from the loaded configuration.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{},
		// Page loops against the device gateway stay polite: 10 req/s
		// sustained with small bursts.
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
}

// AuthError is returned when the upstream rejects our credentials.
// Status and body are preserved for the caller.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("biotime auth failed [%d]: %s", e.Status, e.Body)
}

// APIError is any non-success upstream response outside authentication.
// Status and body are preserved for the caller.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("biotime API error [%d]: %s", e.Status, e.Body)
}

// getJSON performs one authenticated GET against the upstream and decodes
// the response body into out. Non-2xx responses become an APIError.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, timeout time.Duration, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	token, err := c.authToken(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "JWT "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("biotime request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read biotime response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode biotime response: %w", err)
	}
	return nil
}
