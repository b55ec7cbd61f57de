package datajud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// tokenSafetyMargin is subtracted from the reported lifetime so a token is
// never presented right at its expiry boundary.
const tokenSafetyMargin = 60 * time.Second

// TokenSource caches the short-lived bearer token issued by the Datajud
// public API. Empty at construction, populated on first use, refreshed on
// expiry. Concurrent refreshes collapse into a single in-flight exchange.
type TokenSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time

	group singleflight.Group

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenSource builds a token source. now may be nil (defaults to time.Now).
func NewTokenSource(baseURL, apiKey string, httpClient *http.Client, now func() time.Time) *TokenSource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if now == nil {
		now = time.Now
	}
	return &TokenSource{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		now:        now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token returns the cached token if still valid, otherwise performs one
// credential exchange and caches the result.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	if t.apiKey == "" {
		return "", ErrNoAPIKey
	}

	t.mu.Lock()
	if t.token != "" && t.now().Before(t.expiresAt) {
		token := t.token
		t.mu.Unlock()
		return token, nil
	}
	t.mu.Unlock()

	val, err, _ := t.group.Do("token", func() (any, error) {
		return t.exchange(ctx)
	})
	if err != nil {
		return "", err
	}
	return val.(string), nil
}

func (t *TokenSource) exchange(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/api_publica_token", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	req.Header.Set("Authorization", "APIKey "+t.apiKey)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrAuthExchange, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrAuthExchange, resp.StatusCode)
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: parse response: %v", ErrAuthExchange, err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access_token", ErrAuthExchange)
	}

	lifetime := time.Duration(parsed.ExpiresIn) * time.Second
	t.mu.Lock()
	t.token = parsed.AccessToken
	t.expiresAt = t.now().Add(lifetime - tokenSafetyMargin)
	t.mu.Unlock()

	return parsed.AccessToken, nil
}
