// Package http provides an HTTP implementation of the litmap backend services.
// A single Client talks to the orchestration server's JSON endpoints.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/litmap"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for backend requests. Orchestration
// fans out to several LLM-backed agents, so it is generous.
const DefaultTimeout = 60 * time.Second

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Ensure Client implements the backend services at compile time.
var (
	_ litmap.Orchestrator      = (*Client)(nil)
	_ litmap.AgentService      = (*Client)(nil)
	_ litmap.Librarian         = (*Client)(nil)
	_ litmap.LocationExtractor = (*Client)(nil)
	_ litmap.VibeSearcher      = (*Client)(nil)
	_ litmap.Chatter           = (*Client)(nil)
)

// Client calls the Living Literary Map orchestration backend.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for backend requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient uses the given HTTP client. Its timeout is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit caps outgoing requests per second. Zero or negative
// disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// postJSON sends in as a JSON body to path and decodes the response into out.
// agent names the remote agent in error messages.
func (c *Client) postJSON(ctx context.Context, agent, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", agent, err)
	}
	return c.do(ctx, agent, path, "application/json", bytes.NewReader(body), out)
}

func (c *Client) do(ctx context.Context, agent, path, contentType string, body io.Reader, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return litmap.Errorf(litmap.EUNAVAILABLE, "%s unreachable: %v", agent, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(agent, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return litmap.Errorf(litmap.EINTERNAL, "%s returned invalid JSON: %v", agent, err)
	}
	return nil
}

// responseError converts a non-2xx response into a domain error, preferring
// the backend's {"error": "..."} message.
func responseError(agent string, resp *http.Response) error {
	code := litmap.EUNAVAILABLE
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusMethodNotAllowed:
		code = litmap.EINVALID
	case http.StatusNotFound:
		code = litmap.ENOTFOUND
	}

	msg := fmt.Sprintf("%s error: %d", agent, resp.StatusCode)
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			msg = fmt.Sprintf("%s error: %s", agent, payload.Error)
		}
	}
	return litmap.Errorf(code, "%s", msg)
}
