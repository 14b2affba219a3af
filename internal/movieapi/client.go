package movieapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fetcher defines the movie lookups the explorer needs.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	SearchMovies(ctx context.Context, title string) ([]MovieSummary, error)
	FetchMovie(ctx context.Context, id string) (*MovieDetail, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrNetwork marks failures to obtain a response: connection errors,
// timeouts and responses the API rejected with an error status.
var ErrNetwork = errors.New("movie api unreachable")

// ErrParse marks responses whose body is not the expected JSON shape.
var ErrParse = errors.New("movie api response malformed")

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const (
	defaultBaseURL   = "http://localhost:8080/api"
	defaultUserAgent = "marquee/0.1"
	defaultTimeout   = 10 * time.Second
)

// Client talks to the movie metadata HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds every request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a logger for per-request debug lines.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// SearchMovies runs GET /movies/search?title=... and returns the decoded list
// exactly as the API sent it, duplicates included. A JSON null body is
// reported as ErrParse.
func (c *Client) SearchMovies(ctx context.Context, title string) ([]MovieSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("title", title)
	var payload []MovieSummary
	if err := c.get(ctx, c.endpoint(values, "movies", "search"), &payload); err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("search movies: %w: empty body", ErrParse)
	}
	return payload, nil
}

// FetchMovie runs GET /movies/{id}. A JSON null body is reported as ErrParse.
func (c *Client) FetchMovie(ctx context.Context, id string) (*MovieDetail, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("movie id required")
	}
	var payload *MovieDetail
	if err := c.get(ctx, c.endpoint(nil, "movies", id), &payload); err != nil {
		return nil, fmt.Errorf("fetch movie %s: %w", id, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("fetch movie %s: %w: empty body", id, ErrParse)
	}
	return payload, nil
}

func (c *Client) endpoint(query url.Values, segments ...string) *url.URL {
	u := *c.baseURL
	escaped := make([]string, 0, len(segments))
	raw := make([]string, 0, len(segments))
	for _, seg := range segments {
		raw = append(raw, seg)
		escaped = append(escaped, url.PathEscape(seg))
	}
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.Join(raw, "/")
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return &u
}

func (c *Client) get(ctx context.Context, reqURL *url.URL, dest any) error {
	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Str("request_id", requestID).Str("url", reqURL.String()).Err(err).Msg("request failed")
		return fmt.Errorf("%w: execute request %s: %v", ErrNetwork, requestID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("request_id", requestID).
		Str("url", reqURL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: api %s returned status %d", ErrNetwork, reqURL.Path, resp.StatusCode)
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response %s: %v", ErrParse, requestID, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: decode response %s: trailing data after JSON value", ErrParse, requestID)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
