// Package api is the HTTP client for the admin resource API.
//
// A [Client] wraps one base URL and carries the transport configuration
// (timeout, extra headers, logger) as an explicitly constructed value so that
// callers can substitute a test server without touching global state. Typed
// accessors for each resource kind hang off the client:
//
//	c := api.NewClient(api.Config{BaseURL: "http://localhost:5120"})
//	users, err := c.Users().List(ctx)
//
// The client performs no retries. Network failures, timeouts and 5xx statuses
// surface as [*TransportError], missing records as [*NotFoundError], and any
// other 4xx as [*ValidationError] with the server-reported reason.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5120"

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 10 * time.Second

// Config holds the transport settings for a Client.
type Config struct {
	// BaseURL is the scheme and host of the API, without a trailing slash.
	BaseURL string
	// Timeout bounds each request end to end. Zero means DefaultTimeout.
	Timeout time.Duration
	// Header is merged into every request. Content-Type is managed by the
	// client and cannot be overridden here.
	Header http.Header
	// Logger receives one debug event per request. Nil disables request
	// logging.
	Logger *zerolog.Logger
}

// Client issues requests against the admin API. It is safe for concurrent
// use by multiple goroutines.
type Client struct {
	baseURL string
	header  http.Header
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client from cfg, applying defaults for unset fields.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Client{
		baseURL: base,
		header:  cfg.Header.Clone(),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do sends one JSON request. A non-nil body is marshaled and sent with
// Content-Type: application/json. Network-level failures come back as
// *TransportError; status handling is left to the caller.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	op := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal request body: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	for k, vs := range c.header {
		req.Header[k] = vs
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return nil, &TransportError{Op: op, Err: err}
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")
	return resp, nil
}

// decode drains and closes the response body, mapping non-2xx statuses to the
// error taxonomy and unmarshaling the body into target otherwise. target may
// be nil for responses whose body is irrelevant.
func (c *Client) decode(resp *http.Response, op, resource, id string, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resource, id, resp)
	}
	if target == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// EnvBaseURL is the environment variable consulted by BaseURLFromEnv.
const EnvBaseURL = "ADMINCTL_BASE_URL"

// BaseURLFromEnv returns the base URL from the environment, or the default.
func BaseURLFromEnv() string {
	if v := os.Getenv(EnvBaseURL); v != "" {
		return v
	}
	return DefaultBaseURL
}
