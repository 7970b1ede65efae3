package biotime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenPath = "/jwt-api-token-auth/"

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// authToken returns a valid upstream token, reusing the cached one while its
// exp claim still has slack. Tokens without a decodable exp are fetched fresh
// on every call.
func (c *Client) authToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && !c.tokenExpires.IsZero() && time.Now().Before(c.tokenExpires.Add(-tokenSlack)) {
		return c.token, nil
	}

	token, err := c.authenticate(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.tokenExpires = tokenExpiry(token)
	return token, nil
}

// authenticate posts credentials to the upstream token endpoint.
func (c *Client) authenticate(ctx context.Context) (string, error) {
	payload, err := json.Marshal(tokenRequest{Username: c.username, Password: c.password})
	if err != nil {
		return "", fmt.Errorf("failed to encode credentials: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("biotime auth request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read auth response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to decode auth response: %w", err)
	}
	if tr.Token == "" {
		return "", &AuthError{Status: resp.StatusCode, Body: "auth response carried no token"}
	}
	return tr.Token, nil
}

// tokenExpiry extracts the exp claim from the upstream JWT without verifying
// the signature; we only need a reuse horizon, the upstream enforces validity.
// Returns the zero time when the claim is absent or undecodable.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
