package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/umputun/newshub/pkg/db"
)

// Guardian adapts the Guardian Open Platform content API
type Guardian struct {
	client   *client
	window   time.Duration
	pageSize int
	now      func() time.Time
}

// NewGuardian creates a Guardian adapter
func NewGuardian(opts Options) *Guardian {
	opts = opts.normalized()
	return &Guardian{
		client:   newClient(opts.Timeout, opts.UserAgent),
		window:   opts.Window,
		pageSize: 50,
		now:      opts.Now,
	}
}

// guardianSections maps category display names to Guardian section ids
var guardianSections = map[string]string{
	"Technology":    "technology",
	"Business":      "business",
	"Sports":        "sport",
	"Health":        "society",
	"Science":       "science",
	"Politics":      "politics",
	"World":         "world",
	"Entertainment": "culture",
}

type guardianResult struct {
	ID                 string `json:"id"`
	WebTitle           string `json:"webTitle"`
	WebURL             string `json:"webUrl"`
	WebPublicationDate string `json:"webPublicationDate"`
	Fields             struct {
		TrailText string `json:"trailText"`
		Thumbnail string `json:"thumbnail"`
		Body      string `json:"body"`
	} `json:"fields"`
}

type guardianResponse struct {
	Response struct {
		Status  string           `json:"status"`
		Results []guardianResult `json:"results"`
	} `json:"response"`
}

// Fetch queries the search endpoint for one category
func (a *Guardian) Fetch(ctx context.Context, src db.Source, category db.Category) ([]Candidate, error) {
	endpoint := src.APIConfig["search"]
	if endpoint == "" {
		endpoint = "/search"
	}

	section, ok := guardianSections[category.Name]
	if !ok {
		section = "news"
	}

	params := url.Values{}
	params.Set("api-key", src.APIKey)
	params.Set("q", category.Name)
	params.Set("section", section)
	params.Set("show-fields", "headline,trailText,thumbnail,body")
	params.Set("page-size", fmt.Sprintf("%d", a.pageSize))
	params.Set("from-date", a.now().Add(-a.window).UTC().Format("2006-01-02"))

	var resp guardianResponse
	if err := a.client.getJSON(ctx, src.APIURL+endpoint, params, &resp); err != nil {
		return nil, fmt.Errorf("guardian request for %q: %w", category.Name, err)
	}

	candidates := make([]Candidate, 0, len(resp.Response.Results))
	for _, result := range resp.Response.Results {
		if result.WebURL == "" || result.WebTitle == "" {
			continue
		}

		published := a.now()
		if ts, err := time.Parse(time.RFC3339, result.WebPublicationDate); err == nil {
			published = ts
		}

		meta, _ := json.Marshal(result) //nolint:errcheck // marshaling a decoded struct
		candidates = append(candidates, Candidate{
			Title:       cleanText(result.WebTitle),
			Description: cleanText(result.Fields.TrailText),
			Content:     cleanHTML(result.Fields.Body),
			URL:         result.WebURL,
			ImageURL:    result.Fields.Thumbnail,
			ExternalID:  result.ID,
			Published:   published,
			Metadata:    meta,
		})
	}
	return candidates, nil
}
