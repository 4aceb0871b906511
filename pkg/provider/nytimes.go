package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/umputun/newshub/pkg/db"
)

// NYTimes adapts the New York Times article search API
type NYTimes struct {
	client *client
	window time.Duration
	now    func() time.Time
}

// NewNYTimes creates a New York Times adapter
func NewNYTimes(opts Options) *NYTimes {
	opts = opts.normalized()
	return &NYTimes{
		client: newClient(opts.Timeout, opts.UserAgent),
		window: opts.Window,
		now:    opts.Now,
	}
}

// nytSections maps category display names to NYT section names
var nytSections = map[string]string{
	"Technology":    "technology",
	"Business":      "business",
	"Sports":        "sports",
	"Health":        "health",
	"Science":       "science",
	"Politics":      "politics",
	"World":         "world",
	"Entertainment": "arts",
}

type nytDoc struct {
	ID       string `json:"_id"`
	WebURL   string `json:"web_url"`
	Abstract string `json:"abstract"`
	Headline struct {
		Main string `json:"main"`
	} `json:"headline"`
	Byline struct {
		Original string `json:"original"`
	} `json:"byline"`
	PubDate    string `json:"pub_date"`
	Multimedia []struct {
		Type    string `json:"type"`
		Subtype string `json:"subtype"`
		URL     string `json:"url"`
	} `json:"multimedia"`
}

type nytResponse struct {
	Status   string `json:"status"`
	Response struct {
		Docs []nytDoc `json:"docs"`
	} `json:"response"`
}

// Fetch queries the article search endpoint for one category
func (a *NYTimes) Fetch(ctx context.Context, src db.Source, category db.Category) ([]Candidate, error) {
	endpoint := src.APIConfig["article_search"]
	if endpoint == "" {
		endpoint = "/svc/search/v2/articlesearch.json"
	}

	section, ok := nytSections[category.Name]
	if !ok {
		section = "news"
	}

	params := url.Values{}
	params.Set("api-key", src.APIKey)
	params.Set("q", category.Name)
	params.Set("fq", fmt.Sprintf("section_name:(%q)", section))
	params.Set("begin_date", a.now().Add(-a.window).UTC().Format("20060102"))
	params.Set("sort", "newest")

	var resp nytResponse
	if err := a.client.getJSON(ctx, src.APIURL+endpoint, params, &resp); err != nil {
		return nil, fmt.Errorf("nytimes request for %q: %w", category.Name, err)
	}

	candidates := make([]Candidate, 0, len(resp.Response.Docs))
	for _, doc := range resp.Response.Docs {
		if doc.WebURL == "" || doc.Headline.Main == "" {
			continue
		}

		candidates = append(candidates, Candidate{
			Title:       cleanText(doc.Headline.Main),
			Description: cleanText(doc.Abstract),
			URL:         doc.WebURL,
			ImageURL:    nytImageURL(doc),
			Author:      doc.Byline.Original,
			ExternalID:  doc.ID,
			Published:   a.parsePubDate(doc.PubDate),
			Metadata:    mustMarshal(doc),
		})
	}
	return candidates, nil
}

// parsePubDate handles the timezone format variants NYT responses use
func (a *NYTimes) parsePubDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z0700"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return a.now()
}

// nytImageURL picks the large image variant, relative to nytimes.com
func nytImageURL(doc nytDoc) string {
	for _, media := range doc.Multimedia {
		if media.Type == "image" && media.Subtype == "large" {
			return "https://www.nytimes.com/" + media.URL
		}
	}
	return ""
}

func mustMarshal(v interface{}) json.RawMessage {
	data, _ := json.Marshal(v) //nolint:errcheck // marshaling a decoded struct
	return data
}
