package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/newshub/pkg/db"
)

// NewsAPI adapts the NewsAPI.org wire format. Sources that proxy through
// NewsAPI (bbc, opennews, newscred in the default config) register the same
// adapter and differ only in api_config, e.g. a fixed "sources" filter.
type NewsAPI struct {
	client   *client
	window   time.Duration
	pageSize int
	now      func() time.Time
}

// NewNewsAPI creates a NewsAPI adapter
func NewNewsAPI(opts Options) *NewsAPI {
	opts = opts.normalized()
	return &NewsAPI{
		client:   newClient(opts.Timeout, opts.UserAgent),
		window:   opts.Window,
		pageSize: 100,
		now:      opts.Now,
	}
}

type newsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

// Fetch queries the "everything" endpoint for one category
func (a *NewsAPI) Fetch(ctx context.Context, src db.Source, category db.Category) ([]Candidate, error) {
	endpoint := src.APIConfig["everything"]
	if endpoint == "" {
		endpoint = "/v2/everything"
	}

	params := url.Values{}
	params.Set("apiKey", src.APIKey)
	params.Set("q", category.Name)
	params.Set("language", src.Language)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(a.pageSize))
	params.Set("from", a.now().Add(-a.window).UTC().Format(time.RFC3339))
	if filter := src.APIConfig["sources"]; filter != "" {
		params.Set("sources", filter)
	}

	var resp newsAPIResponse
	if err := a.client.getJSON(ctx, src.APIURL+endpoint, params, &resp); err != nil {
		return nil, fmt.Errorf("newsapi request for %q: %w", category.Name, err)
	}

	candidates := make([]Candidate, 0, len(resp.Articles))
	for _, article := range resp.Articles {
		if article.URL == "" || article.Title == "" {
			continue
		}

		// articles without a recoverable date get the parse time
		published := a.now()
		if ts, err := time.Parse(time.RFC3339, article.PublishedAt); err == nil {
			published = ts
		}

		meta, _ := json.Marshal(article) //nolint:errcheck // marshaling a decoded struct
		candidates = append(candidates, Candidate{
			Title:       cleanText(article.Title),
			Description: cleanText(article.Description),
			Content:     cleanHTML(article.Content),
			URL:         article.URL,
			ImageURL:    article.URLToImage,
			Author:      article.Author,
			Published:   published,
			Metadata:    meta,
		})
	}
	return candidates, nil
}
