// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DEFAULT_REQUEST_TIMEOUT_SECONDS bounds every request; a stuck upstream
// aborts instead of hanging the caller.
const DEFAULT_REQUEST_TIMEOUT_SECONDS = 10

// maxErrorBodyBytes caps how much of an error response is kept for messages.
const maxErrorBodyBytes = 512

// StatusError reports a non-2xx response, with a snippet of the response
// body for diagnostics.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return "unexpected status code: " + e.Status
	}
	return fmt.Sprintf("unexpected status code: %s: %s", e.Status, e.Body)
}

// HTTPClient issues JSON requests against a single API base URL.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates an HTTPClient with the default request timeout.
func NewHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClientWithTimeout(baseURL, DEFAULT_REQUEST_TIMEOUT_SECONDS*time.Second)
}

// NewHTTPClientWithTimeout creates an HTTPClient with a custom request timeout.
func NewHTTPClientWithTimeout(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request sends one JSON request and decodes the body into response when it
// is non-nil. The context cancels or deadlines the request on top of the
// client timeout. No retries: a failed fetch is reported, not repeated.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	req, err := c.newRequest(ctx, method, endpoint, headers, body)
	if err != nil {
		return err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return &StatusError{
			Code:   res.StatusCode,
			Status: res.Status,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	if response == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(response); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, endpoint, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
