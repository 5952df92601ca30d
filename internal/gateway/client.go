package gateway

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

// Client is an HTTP client for the quiz backend API.
// It is a pure translation layer: one method per backend operation, no
// retries, no caching, no local state beyond the base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithHTTPClient creates an API client with a custom http.Client (for testing)
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// APIError represents a non-2xx response from the backend.
// Status is always the HTTP status code; Message comes from the response
// body when one is present, else a generic fallback.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// errorBody is the backend's error response shape
type errorBody struct {
	Message string `json:"message"`
}

const genericErrorMessage = "an error occurred"

// Do performs an HTTP request against the backend.
// A non-empty token is forwarded as a bearer credential. On a non-2xx
// status the returned error is an *APIError; a body that is not valid
// JSON degrades to the generic message with the status preserved.
func (c *Client) Do(ctx context.Context, method, path, token string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: genericErrorMessage}
		var eb errorBody
		if err := json.Unmarshal(respBody, &eb); err == nil && eb.Message != "" {
			apiErr.Message = eb.Message
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path, token string, result any) error {
	return c.Do(ctx, http.MethodGet, path, token, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path, token string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, token, body, result)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path, token string, body, result any) error {
	return c.Do(ctx, http.MethodPut, path, token, body, result)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path, token string) error {
	return c.Do(ctx, http.MethodDelete, path, token, nil, nil)
}
