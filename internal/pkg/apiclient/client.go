// internal/pkg/apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// SessionHeader carries the storefront session token
	SessionHeader = "X-Session-Token"

	apiPrefix       = "/api"
	defaultTimeout  = 15 * time.Second
	defaultMaxTries = 3
)

// APIError is a non-2xx response from the storefront
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("storefront: %d %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("storefront: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the storefront
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the storefront REST API. It keeps the session token the
// server hands out so consecutive calls share one cart.
type Client struct {
	baseURL  string
	http     *http.Client
	maxTries uint
	backoff  func() backoff.BackOff

	mu    sync.RWMutex
	token string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSessionToken resumes an existing session
func WithSessionToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithRetry sets how many times idempotent requests are attempted and the
// initial delay between attempts
func WithRetry(maxTries uint, initial time.Duration) Option {
	return func(c *Client) {
		c.maxTries = max(maxTries, 1)
		c.backoff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			return b
		}
	}
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		maxTries: defaultMaxTries,
		backoff:  func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionToken returns the current session token, if any
func (c *Client) SessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Health checks the server health endpoint
func (c *Client) Health(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodGet, c.baseURL+"/health", nil, nil)
	return err
}

// do sends an API request and decodes the JSON response into out. Requests
// other than POST are retried on transport errors and 5xx responses.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	data, err := c.send(ctx, method, u, payload, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, u string, payload []byte, header http.Header) ([]byte, error) {
	attempt := func() ([]byte, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, u, body)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		for k, v := range header {
			req.Header[k] = v
		}
		if token := c.SessionToken(); token != "" {
			req.Header.Set(SessionHeader, token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if token := resp.Header.Get(SessionHeader); token != "" {
			c.mu.Lock()
			c.token = token
			c.mu.Unlock()
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= 300 {
			apiErr := &APIError{StatusCode: resp.StatusCode}
			if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
			if resp.StatusCode < 500 {
				return nil, backoff.Permanent(apiErr)
			}
			return nil, apiErr
		}
		return data, nil
	}

	tries := c.maxTries
	if method == http.MethodPost {
		tries = 1
	}
	return backoff.Retry(ctx, attempt,
		backoff.WithBackOff(c.backoff()),
		backoff.WithMaxTries(tries),
	)
}
