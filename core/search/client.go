// Package search wraps the SerpAPI search collaborator: structured query
// parameters in, structured result mapping out. Calls share the gateway's
// retry contract; results are cached in a bounded LRU.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/adalundhe/voyant/core/errors"
)

const (
	defaultBaseURL   = "https://serpapi.com/search.json"
	defaultCacheSize = 256
	defaultTimeout   = 30 * time.Second
)

// Engines supported by the travel responders.
const (
	EngineFlights = "google_flights"
	EngineHotels  = "google_hotels"
	EngineMaps    = "google_maps"
)

// Client calls SerpAPI engines with retry and result caching.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache[string, map[string]any]
	policy     errors.RetryPolicy
	logger     *slog.Logger
	sleep      func(time.Duration)
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different endpoint. Tests use httptest.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(policy errors.RetryPolicy) ClientOption {
	return func(c *Client) { c.policy = policy }
}

// WithSleep replaces the backoff sleep.
func WithSleep(sleep func(time.Duration)) ClientOption {
	return func(c *Client) { c.sleep = sleep }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient builds a SerpAPI client. An empty API key yields a client that
// reports itself unavailable; responders then degrade to generated answers.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	cache, err := lru.New[string, map[string]any](defaultCacheSize)
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      cache,
		policy:     errors.DefaultRetryPolicy(),
		logger:     slog.Default(),
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Available reports whether the collaborator can be used at all.
func (c *Client) Available() bool {
	return c != nil && c.apiKey != ""
}

// Search runs one engine query and returns the decoded result mapping.
func (c *Client) Search(ctx context.Context, engine string, params map[string]string) (map[string]any, error) {
	if !c.Available() {
		return nil, errors.Provider("search collaborator unavailable", nil)
	}

	key := requestKey(engine, params)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	var lastErr error
	for attempt := 0; attempt < c.policy.MaxAttempts; attempt++ {
		result, err := c.doRequest(ctx, engine, params)
		if err == nil {
			c.cache.Add(key, result)
			return result, nil
		}

		lastErr = err
		if !errors.IsRateLimit(err) {
			return nil, err
		}
		if attempt < c.policy.MaxAttempts-1 {
			delay := errors.DelayFor(attempt, err, c.policy)
			c.logger.Warn("search rate limited, backing off",
				"engine", engine,
				"attempt", attempt+1,
				"delay", delay,
			)
			c.sleep(delay)
		}
	}
	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, engine string, params map[string]string) (map[string]any, error) {
	values := url.Values{}
	values.Set("engine", engine)
	values.Set("api_key", c.apiKey)
	for k, v := range params {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, errors.Provider("search request build failed", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Provider("search request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Provider("search response read failed", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ClassifyHTTP(resp.StatusCode, resp.Header, fmt.Errorf("serpapi %s: status %d", engine, resp.StatusCode))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Provider("search response decode failed", err)
	}

	if msg, ok := result["error"].(string); ok && msg != "" {
		return nil, errors.Provider("serpapi error: "+msg, nil)
	}
	return result, nil
}

func requestKey(engine string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(engine)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	return b.String()
}
