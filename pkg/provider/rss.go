package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/newshub/pkg/db"
)

// RSS is the generic adapter for sources that publish RSS/Atom feeds instead
// of a JSON API. Feed URLs come from the source's api_config: a per-category
// "feed.<category-slug>" key when the source offers topic feeds, with "feed"
// (and finally the base api_url) as the default topic fallback.
type RSS struct {
	parser  *gofeed.Parser
	timeout time.Duration
	window  time.Duration
	now     func() time.Time
}

// NewRSS creates an RSS adapter
func NewRSS(opts Options) *RSS {
	opts = opts.normalized()
	parser := gofeed.NewParser()
	parser.UserAgent = opts.UserAgent
	return &RSS{
		parser:  parser,
		timeout: opts.Timeout,
		window:  opts.Window,
		now:     opts.Now,
	}
}

// Fetch retrieves and parses the feed configured for one category
func (a *RSS) Fetch(ctx context.Context, src db.Source, category db.Category) ([]Candidate, error) {
	feedURL := src.APIConfig["feed."+category.Slug]
	if feedURL == "" {
		feedURL = src.APIConfig["feed"]
	}
	if feedURL == "" {
		feedURL = src.APIURL
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	feed, err := a.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	cutoff := a.now().Add(-a.window)
	candidates := make([]Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}

		published := a.now()
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		if published.Before(cutoff) {
			continue
		}

		candidate := Candidate{
			Title:       cleanText(item.Title),
			Description: cleanText(item.Description),
			Content:     cleanHTML(item.Content),
			URL:         item.Link,
			ExternalID:  item.GUID,
			Published:   published,
		}
		if item.Author != nil {
			candidate.Author = item.Author.Name
		}
		if item.Image != nil {
			candidate.ImageURL = item.Image.URL
		}

		meta, _ := json.Marshal(map[string]string{"feed": feedURL, "guid": item.GUID}) //nolint:errcheck // fixed shape
		candidate.Metadata = meta

		candidates = append(candidates, candidate)
	}
	return candidates, nil
}
