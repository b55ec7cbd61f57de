package datajud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Datajud endpoint operated by the CNJ.
const DefaultBaseURL = "https://api-publica.datajud.cnj.jus.br"

// Client queries the Datajud public search API for one configured tribunal.
type Client struct {
	baseURL    string
	tribunal   string
	httpClient *http.Client
	tokens     *TokenSource
}

// NewClient builds a client scoped to one tribunal alias (e.g. "TJMS").
func NewClient(baseURL, tribunal, apiKey string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("DATAJUD_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		baseURL:    baseURL,
		tribunal:   tribunal,
		httpClient: httpClient,
		tokens:     NewTokenSource(baseURL, apiKey, httpClient, nil),
	}
}

type searchRequest struct {
	Query searchQuery `json:"query"`
}

type searchQuery struct {
	Match searchMatch `json:"match"`
}

type searchMatch struct {
	NumeroProcesso string `json:"numeroProcesso"`
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source RawProcess `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// FetchCase runs an exact-match search for the case number and returns the
// first hit. No retries here; retry policy is the caller's concern.
func (c *Client) FetchCase(ctx context.Context, caseNumber string) (RawProcess, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return RawProcess{}, err
	}

	payload, err := json.Marshal(searchRequest{
		Query: searchQuery{Match: searchMatch{NumeroProcesso: caseNumber}},
	})
	if err != nil {
		return RawProcess{}, fmt.Errorf("%w: encode query: %v", ErrUpstream, err)
	}

	url := fmt.Sprintf("%s/%s/_search", c.baseURL, c.tribunal)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return RawProcess{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RawProcess{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RawProcess{}, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return RawProcess{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return RawProcess{}, fmt.Errorf("%w: parse response: %v", ErrUpstream, err)
	}
	if len(parsed.Hits.Hits) == 0 {
		return RawProcess{}, fmt.Errorf("%w: %s", ErrCaseNotFound, caseNumber)
	}
	return parsed.Hits.Hits[0].Source, nil
}
