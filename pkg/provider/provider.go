package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/umputun/newshub/pkg/db"
)

// Candidate is a parsed but not yet deduplicated article from a provider response
type Candidate struct {
	Title       string
	Description string
	Content     string
	URL         string
	ImageURL    string
	Author      string
	ExternalID  string
	Published   time.Time
	Metadata    json.RawMessage
}

// Adapter translates one provider family's wire format into normalized candidates.
// Fetch issues a single request for one category; query naming, authentication and
// topic vocabulary are fully encapsulated behind this interface.
type Adapter interface {
	Fetch(ctx context.Context, src db.Source, category db.Category) ([]Candidate, error)
}

// Options holds settings shared by all adapters
type Options struct {
	Timeout   time.Duration    // per-request timeout
	Window    time.Duration    // trailing publication window
	UserAgent string
	Now       func() time.Time // injected clock, defaults to time.Now
}

func (o Options) normalized() Options {
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Window == 0 {
		o.Window = 24 * time.Hour
	}
	if o.UserAgent == "" {
		o.UserAgent = "Newshub/1.0"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Registry maps source slugs to adapters, resolved at startup so an unknown
// slug is a checked configuration error rather than a runtime lookup failure.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates an empty adapter registry
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register binds a source slug to an adapter
func (r *Registry) Register(slug string, adapter Adapter) {
	r.adapters[slug] = adapter
}

// Get returns the adapter registered for a slug
func (r *Registry) Get(slug string) (Adapter, bool) {
	adapter, ok := r.adapters[slug]
	return adapter, ok
}

// Slugs returns all registered slugs, sorted
func (r *Registry) Slugs() []string {
	slugs := make([]string, 0, len(r.adapters))
	for slug := range r.adapters {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// client is a thin JSON-over-HTTP helper shared by the API adapters
type client struct {
	http      *http.Client
	userAgent string
}

func newClient(timeout time.Duration, userAgent string) *client {
	return &client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// getJSON performs a GET request and decodes the JSON response into target
func (c *client) getJSON(ctx context.Context, rawURL string, params url.Values, target interface{}) error {
	reqURL := rawURL
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
