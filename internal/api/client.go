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

	"github.com/buildit/buildit/internal/logging"
)

// API paths
const (
	KitsPath     = "/api/kits"
	GeneratePath = "/api/generate"
	HealthPath   = "/health"
)

// Client talks to the BuildIT backend.
type Client struct {
	// BaseURL is the backend root (e.g., "http://localhost:8000")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// Timeout bounds each request; 0 means no timeout. Generation can take
	// tens of seconds, so the default is to wait.
	Timeout time.Duration
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the per-request timeout (0 disables it)
func (c *Client) SetTimeout(timeout time.Duration) {
	c.Timeout = timeout
}

// ListKits fetches the kit catalog.
func (c *Client) ListKits(ctx context.Context) ([]Kit, error) {
	body, err := c.do(ctx, http.MethodGet, KitsPath, nil, "Kit catalog request failed")
	if err != nil {
		return nil, err
	}

	var kits []Kit
	if err := json.Unmarshal(body, &kits); err != nil {
		return nil, NewParseError("failed to parse kit catalog", err)
	}
	return kits, nil
}

// Generate asks the backend for a build plan.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	payload, err := json.Marshal(req.normalized())
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, GeneratePath, payload, "Generation failed")
	if err != nil {
		return nil, err
	}

	var result GenerationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, NewParseError("failed to parse generation result", err)
	}
	return &result, nil
}

// Health probes the backend.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	body, err := c.do(ctx, http.MethodGet, HealthPath, nil, "Health check failed")
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, NewParseError("failed to parse health response", err)
	}
	return &status, nil
}

// do performs one request and returns the body of a 2xx response. Non-2xx
// responses are turned into errors using the body's detail field.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, failure string) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	url := c.BaseURL + path

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.LogAPIRequest(method, url, len(payload))
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	logging.LogAPIResponse(method, url, resp.StatusCode, time.Since(start))
	logging.LogBody("API response body", body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp.StatusCode, body, failure)
	}

	return body, nil
}
