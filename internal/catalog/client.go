// Package catalog is a rate-limited client for a TMDB-style catalog API.
// Every operation returns a Result envelope instead of an error: screens
// render either the value or the message, and a partial failure never
// propagates as a Go error past this boundary.
package catalog

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/reelistapp/reelist-server/internal/ratelimit"
)

const (
	// Rate limit: generous enough for a burst of home-screen sections,
	// comfortably inside the upstream's published budget.
	defaultRPS   = 20.0
	defaultBurst = 10

	defaultTimeout = 15 * time.Second

	// Shown when neither the upstream body nor the transport gave us
	// anything usable.
	fallbackMessage = "an unexpected error occurred"
)

// Config holds the construction-time settings for a Client.
type Config struct {
	// BaseURL is the API root, e.g. https://api.themoviedb.org/3.
	BaseURL string
	// APIKey is attached to every request as the api_key query parameter.
	APIKey string
	// Timeout bounds each request; zero means defaultTimeout.
	Timeout time.Duration
	// RequestsPerSecond and Burst tune the outbound limiter; zero means defaults.
	RequestsPerSecond float64
	Burst             int
}

// Client is a rate-limited catalog API client.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
}

// New creates a new catalog client.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: ratelimit.New(rps, burst),
		logger:  logger,
	}
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}

// upstreamError is a non-2xx response from the catalog. The message is the
// body's status_message when present, so user-facing failures carry the
// upstream's own wording ("The resource you requested could not be found.").
type upstreamError struct {
	status  int
	message string
}

func (e *upstreamError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("catalog returned status %d", e.status)
}

// get executes a GET against path, attaching the credential, and decodes the
// 200 body into out. Timeouts and connection failures come back as the
// transport error; non-2xx as *upstreamError.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}

	// Wait for rate limit, keyed by host so the map stays tiny.
	if err := c.limiter.Wait(ctx, u.Host); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("catalog request", "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("catalog request failed", "path", path, "status", resp.StatusCode)

		// The catalog reports failures in a status_message body field.
		var upstream struct {
			StatusMessage string `json:"status_message"`
		}
		_ = json.Unmarshal(body, &upstream)
		return &upstreamError{status: resp.StatusCode, message: upstream.StatusMessage}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// failureMessage picks the message for a failed Result: upstream
// status_message first, then the transport error text, then a generic
// fallback.
func failureMessage(err error) string {
	var upstream *upstreamError
	if errors.As(err, &upstream) {
		return upstream.Error()
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallbackMessage
}

// fetch runs one GET and folds the outcome into a Result.
func fetch[T any](ctx context.Context, c *Client, path string, query url.Values) Result[T] {
	var out T
	if err := c.get(ctx, path, query, &out); err != nil {
		return Fail[T](failureMessage(err))
	}
	return Ok(out)
}
