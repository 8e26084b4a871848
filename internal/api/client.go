// Package api is the HTTP client for the operations backend. It implements
// service.Provider on top of net/http.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venturelabs/vlops/internal/common"
	"github.com/venturelabs/vlops/internal/service"
)

// DefaultBaseURL is used when no API URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 4 << 10

// Config holds the client settings.
type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	// Retry applies to idempotent reads only. Mutations are sent once.
	Retry   service.RetryOptions
	Timeout time.Duration
}

// Client talks to the operations API.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	retry      service.RetryOptions
}

var _ service.Provider = (*Client)(nil)

// New creates a client for the API at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}

	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: api url %q: %v", common.ErrInvalidConfig, raw, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("%w: api url %q must be http or https", common.ErrInvalidConfig, raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("%w: api url %q has no host", common.ErrInvalidConfig, raw)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "vlops"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		userAgent:  userAgent,
		retry:      cfg.Retry,
	}, nil
}

// BaseURL returns the API root the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// get performs a GET, retrying connectivity failures and 5xx responses
// according to the retry options.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return common.WithRetry(ctx, func() error {
		err := c.do(ctx, http.MethodGet, path, query, nil, "", out)
		if err != nil && isTransient(err) {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		return err
	}, c.retry)
}

// send performs a JSON request. payload may be nil.
func (c *Client) send(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, nil, body, "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("API request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err)
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("API request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(detail)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedPayload, method, path, err)
	}
	return nil
}

// isTransient reports whether a failed read may succeed when repeated.
func isTransient(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return !errors.Is(err, context.Canceled)
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 500 {
		return true
	}
	return common.IsRetryable(err)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
