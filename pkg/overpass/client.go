// Package overpass provides a minimal client for the Overpass API, fetching
// postal-code boundary centers for a country.
package overpass

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// DefaultURL is the public Overpass interpreter endpoint.
const DefaultURL = "http://overpass-api.de/api/interpreter"

// queryTemplate selects all postal-code boundary relations in the country
// with the given ISO3166-1 code and returns their tags plus area center.
const queryTemplate = `
[out:json];
area["ISO3166-1"=%s][admin_level=2];
relation[boundary=postal_code](area);
out tags center;
`

// Client fetches postal-code geodata from an Overpass interpreter.
type Client interface {
	// FetchPostalAreas issues a single query for all postal-code boundaries
	// in the given country and returns the raw JSON response body.
	FetchPostalAreas(ctx context.Context, country string) ([]byte, error)
}

// Option configures the client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the HTTP client timeout. Overpass area queries can take
// minutes on the public instances.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit sets the requests-per-second limit toward the interpreter.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a Client for the given interpreter URL. An empty URL
// selects the public default instance.
func NewClient(baseURL string, opts ...Option) Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c := &client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 180 * time.Second},
		userAgent:  "plzgeo/1.0",
		limiter:    rate.NewLimiter(1, 1), // public instances throttle aggressively
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPostalAreas issues exactly one GET against the interpreter. There is
// no retry: a failed request is fatal to the caller's run.
func (c *client) FetchPostalAreas(ctx context.Context, country string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "overpass: rate limit")
	}

	params := url.Values{
		"data": {fmt.Sprintf(queryTemplate, country)},
	}
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("overpass: unexpected status %d from %s", resp.StatusCode, c.baseURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: read body")
	}

	return body, nil
}
