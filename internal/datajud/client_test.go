package datajud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, searchHandler http.HandlerFunc) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api_publica_token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok","expires_in":3600}`)
	})
	mux.HandleFunc("/TJMS/_search", searchHandler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "TJMS", "test-key")
	client.httpClient = server.Client()
	client.tokens = NewTokenSource(server.URL, "test-key", server.Client(), nil)
	return client
}

func TestFetchCaseReturnsFirstHit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode search request: %v", err)
		}
		if req.Query.Match.NumeroProcesso != "0001234-55.2024.8.12.0001" {
			t.Errorf("unexpected case number %q", req.Query.Match.NumeroProcesso)
		}
		fmt.Fprint(w, `{"hits":{"hits":[
			{"_source":{"numeroProcesso":"0001234-55.2024.8.12.0001","area":"Cível"}},
			{"_source":{"numeroProcesso":"other"}}
		]}}`)
	})

	raw, err := client.FetchCase(context.Background(), "0001234-55.2024.8.12.0001")
	if err != nil {
		t.Fatalf("FetchCase: %v", err)
	}
	if raw.NumeroProcesso != "0001234-55.2024.8.12.0001" {
		t.Fatalf("expected first hit, got %q", raw.NumeroProcesso)
	}
	if raw.Area != "Cível" {
		t.Fatalf("expected area from _source, got %q", raw.Area)
	}
}

func TestFetchCaseZeroHits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hits":{"hits":[]}}`)
	})

	_, err := client.FetchCase(context.Background(), "999")
	if !errors.Is(err, ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestFetchCaseUpstreamStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchCase(context.Background(), "123")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFetchCasePropagatesTokenError(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "TJMS", "")
	_, err := client.FetchCase(context.Background(), "123")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}
