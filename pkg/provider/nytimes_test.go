package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newshub/pkg/db"
)

func TestNYTimes_Fetch(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/svc/search/v2/articlesearch.json", r.URL.Path)

		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"response": {
				"docs": [
					{
						"_id": "nyt://article/abc-123",
						"web_url": "https://www.nytimes.com/2025/06/01/technology/chips.html",
						"abstract": "The state of the industry.",
						"headline": {"main": "Chip wars"},
						"byline": {"original": "By John Smith"},
						"pub_date": "2025-06-01T08:00:00+0000",
						"multimedia": [
							{"type": "image", "subtype": "thumbnail", "url": "images/thumb.jpg"},
							{"type": "image", "subtype": "large", "url": "images/large.jpg"}
						]
					},
					{
						"_id": "nyt://article/no-url",
						"headline": {"main": "Skipped"}
					}
				]
			}
		}`))
	}))
	defer ts.Close()

	adapter := NewNYTimes(Options{
		Window: 24 * time.Hour,
		Now:    func() time.Time { return now },
	})

	src := db.Source{Slug: "nytimes", APIURL: ts.URL, APIKey: "nyt-key"}
	category := db.Category{Slug: "technology", Name: "Technology"}

	candidates, err := adapter.Fetch(context.Background(), src, category)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, "nyt-key", gotQuery["api-key"])
	assert.Equal(t, "Technology", gotQuery["q"])
	assert.Equal(t, `section_name:("technology")`, gotQuery["fq"])
	assert.Equal(t, "20250531", gotQuery["begin_date"])
	assert.Equal(t, "newest", gotQuery["sort"])

	doc := candidates[0]
	assert.Equal(t, "Chip wars", doc.Title)
	assert.Equal(t, "The state of the industry.", doc.Description)
	assert.Equal(t, "https://www.nytimes.com/2025/06/01/technology/chips.html", doc.URL)
	assert.Equal(t, "https://www.nytimes.com/images/large.jpg", doc.ImageURL, "large multimedia variant resolved")
	assert.Equal(t, "By John Smith", doc.Author)
	assert.Equal(t, "nyt://article/abc-123", doc.ExternalID)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), doc.Published.UTC())
}

func TestNYTimes_ParsePubDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	adapter := NewNYTimes(Options{Now: func() time.Time { return now }})

	t.Run("rfc3339", func(t *testing.T) {
		ts := adapter.parsePubDate("2025-06-01T08:00:00Z")
		assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), ts.UTC())
	})

	t.Run("numeric offset without colon", func(t *testing.T) {
		ts := adapter.parsePubDate("2025-06-01T08:00:00+0000")
		assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), ts.UTC())
	})

	t.Run("garbage falls back to now", func(t *testing.T) {
		assert.Equal(t, now, adapter.parsePubDate("not-a-date"))
	})
}

func TestNYTimes_Fetch_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	adapter := NewNYTimes(Options{})
	_, err := adapter.Fetch(context.Background(), db.Source{APIURL: ts.URL}, db.Category{Name: "World"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 401")
}
