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

func TestGuardian_Fetch(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)

		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"response": {
				"status": "ok",
				"results": [
					{
						"id": "technology/2025/jun/01/some-article",
						"webTitle": "Chips are down",
						"webUrl": "https://www.theguardian.com/technology/2025/jun/01/some-article",
						"webPublicationDate": "2025-06-01T09:30:00Z",
						"fields": {
							"trailText": "A look at <b>silicon</b>",
							"thumbnail": "https://media.guim.co.uk/thumb.jpg",
							"body": "<p>full body</p>"
						}
					},
					{
						"id": "technology/2025/jun/01/no-title",
						"webUrl": "https://www.theguardian.com/no-title"
					}
				]
			}
		}`))
	}))
	defer ts.Close()

	adapter := NewGuardian(Options{
		Window: 48 * time.Hour,
		Now:    func() time.Time { return now },
	})

	src := db.Source{Slug: "guardian", APIURL: ts.URL, APIKey: "guardian-key"}
	category := db.Category{Slug: "technology", Name: "Technology"}

	candidates, err := adapter.Fetch(context.Background(), src, category)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, "guardian-key", gotQuery["api-key"])
	assert.Equal(t, "Technology", gotQuery["q"])
	assert.Equal(t, "technology", gotQuery["section"], "display name mapped to section id")
	assert.Equal(t, "headline,trailText,thumbnail,body", gotQuery["show-fields"])
	assert.Equal(t, "50", gotQuery["page-size"])
	assert.Equal(t, "2025-05-30", gotQuery["from-date"])

	article := candidates[0]
	assert.Equal(t, "Chips are down", article.Title)
	assert.Equal(t, "A look at silicon", article.Description, "trail text markup stripped")
	assert.Equal(t, "https://www.theguardian.com/technology/2025/jun/01/some-article", article.URL)
	assert.Equal(t, "https://media.guim.co.uk/thumb.jpg", article.ImageURL)
	assert.Equal(t, "technology/2025/jun/01/some-article", article.ExternalID, "guardian id used for cross-source dedup")
	assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), article.Published.UTC())
}

func TestGuardian_Fetch_SectionMapping(t *testing.T) {
	tests := []struct {
		category string
		section  string
	}{
		{"Sports", "sport"},
		{"Health", "society"},
		{"Entertainment", "culture"},
		{"Obscure Topic", "news"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.section, r.URL.Query().Get("section"))
				w.Write([]byte(`{"response": {"status": "ok", "results": []}}`))
			}))
			defer ts.Close()

			adapter := NewGuardian(Options{})
			_, err := adapter.Fetch(context.Background(), db.Source{APIURL: ts.URL}, db.Category{Name: tt.category})
			require.NoError(t, err)
		})
	}
}

func TestGuardian_Fetch_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	adapter := NewGuardian(Options{})
	_, err := adapter.Fetch(context.Background(), db.Source{APIURL: ts.URL}, db.Category{Name: "World"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 403")
}
