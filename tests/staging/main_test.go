//go:build staging

// Package staging drives a deployed server over HTTP. Run with
// `go test -tags staging ./tests/staging` and API_URL / API_KEY set.
package staging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

const requestTimeout = 10 * time.Second

var remote struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestMain(m *testing.M) {
	remote.baseURL = strings.TrimRight(envOr("API_URL", "http://localhost:8080"), "/")
	remote.apiKey = envOr("API_KEY", "test-api-key")
	remote.client = &http.Client{Timeout: requestTimeout}

	os.Exit(m.Run())
}

// makeRequest sends body as JSON and returns the response with its body read
func makeRequest(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding %s %s body: %v", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, remote.baseURL+path, payload)
	if err != nil {
		t.Fatalf("building %s %s: %v", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", remote.apiKey)

	resp, err := remote.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s %s response: %v", method, path, err)
	}
	return resp, data
}
