package aggregator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newshub/pkg/aggregator/mocks"
	"github.com/umputun/newshub/pkg/db"
	"github.com/umputun/newshub/pkg/provider"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testSource(id int64, slug string) db.Source {
	return db.Source{ID: id, Slug: slug, Name: slug, Enabled: true, FetchInterval: 60}
}

func testCategories() []db.Category {
	return []db.Category{
		{ID: 1, Slug: "technology", Name: "Technology", Enabled: true},
		{ID: 2, Slug: "sports", Name: "Sports", Enabled: true},
	}
}

func candidatesFor(category db.Category, n int) []provider.Candidate {
	res := make([]provider.Candidate, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, provider.Candidate{
			Title:     fmt.Sprintf("%s article %d", category.Name, i),
			URL:       fmt.Sprintf("https://example.com/%s/%d", category.Slug, i),
			Published: testNow.Add(-time.Hour),
		})
	}
	return res
}

// trackingArticleStore returns an article store mock that records every
// created article and reports duplicates against its own state
func trackingArticleStore() (*mocks.ArticleStoreMock, *sync.Map) {
	var stored sync.Map
	store := &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, url, externalID string) (bool, error) {
			_, ok := stored.Load(url)
			return ok, nil
		},
		CreateArticleFunc: func(ctx context.Context, article *db.Article) (bool, error) {
			if _, loaded := stored.LoadOrStore(article.URL, article); loaded {
				return false, nil
			}
			return true, nil
		},
	}
	return store, &stored
}

func TestAggregator_RunAll(t *testing.T) {
	src := testSource(1, "guardian")

	sources := &mocks.SourceStoreMock{
		GetReadySourcesFunc: func(ctx context.Context, now time.Time) ([]db.Source, error) {
			return []db.Source{src}, nil
		},
		MarkSourceFetchedFunc: func(ctx context.Context, sourceID int64, at time.Time) error {
			return nil
		},
	}
	categories := &mocks.CategoryStoreMock{
		GetEnabledCategoriesFunc: func(ctx context.Context) ([]db.Category, error) {
			return testCategories(), nil
		},
	}
	articles, _ := trackingArticleStore()

	adapter := &mocks.AdapterMock{
		FetchFunc: func(ctx context.Context, src db.Source, category db.Category) ([]provider.Candidate, error) {
			if category.Slug == "technology" {
				return candidatesFor(category, 3), nil
			}
			return candidatesFor(category, 2), nil
		},
	}
	registry := &mocks.AdapterRegistryMock{
		GetFunc: func(slug string) (provider.Adapter, bool) { return adapter, true },
	}

	agg := New(Params{
		Sources:    sources,
		Categories: categories,
		Articles:   articles,
		Registry:   registry,
		NowFn:      func() time.Time { return testNow },
	})

	results, err := agg.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "guardian", results[0].Source)
	assert.True(t, results[0].Success)
	assert.Equal(t, 5, results[0].Count, "3 technology + 2 sports articles")
	assert.Equal(t, "fetched 5 articles from guardian", results[0].Message)

	assert.Len(t, adapter.FetchCalls(), 2, "one request per enabled category")
	require.Len(t, sources.MarkSourceFetchedCalls(), 1)
	assert.Equal(t, src.ID, sources.MarkSourceFetchedCalls()[0].SourceID)
}

func TestAggregator_RunAll_SkipsKnownArticles(t *testing.T) {
	src := testSource(1, "guardian")

	sources := &mocks.SourceStoreMock{
		GetReadySourcesFunc: func(ctx context.Context, now time.Time) ([]db.Source, error) {
			return []db.Source{src}, nil
		},
		MarkSourceFetchedFunc: func(ctx context.Context, sourceID int64, at time.Time) error {
			return nil
		},
	}
	categories := &mocks.CategoryStoreMock{
		GetEnabledCategoriesFunc: func(ctx context.Context) ([]db.Category, error) {
			return testCategories()[:1], nil
		},
	}

	articles, stored := trackingArticleStore()
	// one of the five candidates already exists
	stored.Store("https://example.com/technology/2", &db.Article{URL: "https://example.com/technology/2"})

	adapter := &mocks.AdapterMock{
		FetchFunc: func(ctx context.Context, src db.Source, category db.Category) ([]provider.Candidate, error) {
			return candidatesFor(category, 5), nil
		},
	}
	registry := &mocks.AdapterRegistryMock{
		GetFunc: func(slug string) (provider.Adapter, bool) { return adapter, true },
	}

	agg := New(Params{Sources: sources, Categories: categories, Articles: articles, Registry: registry})

	results, err := agg.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, 4, results[0].Count, "existing article not re-inserted")

	t.Run("second run inserts nothing", func(t *testing.T) {
		results, err := agg.RunAll(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Success)
		assert.Equal(t, 0, results[0].Count)
	})
}

func TestAggregator_RunAll_NoAdapter(t *testing.T) {
	broken := testSource(1, "broken")
	working := testSource(2, "guardian")

	var marked []int64
	sources := &mocks.SourceStoreMock{
		GetReadySourcesFunc: func(ctx context.Context, now time.Time) ([]db.Source, error) {
			return []db.Source{broken, working}, nil
		},
		MarkSourceFetchedFunc: func(ctx context.Context, sourceID int64, at time.Time) error {
			marked = append(marked, sourceID)
			return nil
		},
	}
	categories := &mocks.CategoryStoreMock{
		GetEnabledCategoriesFunc: func(ctx context.Context) ([]db.Category, error) {
			return testCategories()[:1], nil
		},
	}
	articles, _ := trackingArticleStore()

	adapter := &mocks.AdapterMock{
		FetchFunc: func(ctx context.Context, src db.Source, category db.Category) ([]provider.Candidate, error) {
			return candidatesFor(category, 2), nil
		},
	}
	registry := &mocks.AdapterRegistryMock{
		GetFunc: func(slug string) (provider.Adapter, bool) {
			if slug == "broken" {
				return nil, false
			}
			return adapter, true
		},
	}

	agg := New(Params{Sources: sources, Categories: categories, Articles: articles, Registry: registry})

	results, err := agg.RunAll(context.Background())
	require.NoError(t, err, "one misconfigured source does not abort the batch")
	require.Len(t, results, 2)

	assert.False(t, results[0].Success)
	assert.Equal(t, 0, results[0].Count)
	assert.Contains(t, results[0].Message, "no fetch method")

	assert.True(t, results[1].Success, "processing continued after the failure")
	assert.Equal(t, 2, results[1].Count)

	assert.Equal(t, []int64{broken.ID, working.ID}, marked, "even a failed source advances its readiness clock")
}

func TestAggregator_RunAll_AllCategoriesFail(t *testing.T) {
	src := testSource(1, "guardian")

	sources := &mocks.SourceStoreMock{
		GetReadySourcesFunc: func(ctx context.Context, now time.Time) ([]db.Source, error) {
			return []db.Source{src}, nil
		},
		MarkSourceFetchedFunc: func(ctx context.Context, sourceID int64, at time.Time) error {
			return nil
		},
	}
	categories := &mocks.CategoryStoreMock{
		GetEnabledCategoriesFunc: func(ctx context.Context) ([]db.Category, error) {
			return testCategories(), nil
		},
	}
	articles, _ := trackingArticleStore()

	adapter := &mocks.AdapterMock{
		FetchFunc: func(ctx context.Context, src db.Source, category db.Category) ([]provider.Candidate, error) {
			return nil, fmt.Errorf("provider unavailable")
		},
	}
	registry := &mocks.AdapterRegistryMock{
		GetFunc: func(slug string) (provider.Adapter, bool) { return adapter, true },
	}

	agg := New(Params{Sources: sources, Categories: categories, Articles: articles, Registry: registry})

	results, err := agg.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	// per-category failures are absorbed, the source run itself succeeded
	assert.True(t, results[0].Success)
	assert.Equal(t, 0, results[0].Count)
	assert.Len(t, sources.MarkSourceFetchedCalls(), 1)
}

func TestAggregator_RunAll_EnumerationError(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		GetReadySourcesFunc: func(ctx context.Context, now time.Time) ([]db.Source, error) {
			return nil, fmt.Errorf("database gone")
		},
	}

	agg := New(Params{Sources: sources})

	_, err := agg.RunAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get ready sources")
}

func TestAggregator_RunOne(t *testing.T) {
	makeFixtures := func(src *db.Source) (*mocks.SourceStoreMock, *mocks.CategoryStoreMock, *mocks.ArticleStoreMock, *mocks.AdapterRegistryMock) {
		sources := &mocks.SourceStoreMock{
			GetSourceBySlugFunc: func(ctx context.Context, slug string) (*db.Source, error) {
				if src != nil && slug == src.Slug {
					return src, nil
				}
				return nil, fmt.Errorf("source %q not found", slug)
			},
			MarkSourceFetchedFunc: func(ctx context.Context, sourceID int64, at time.Time) error {
				return nil
			},
		}
		categories := &mocks.CategoryStoreMock{
			GetEnabledCategoriesFunc: func(ctx context.Context) ([]db.Category, error) {
				return testCategories()[:1], nil
			},
		}
		articles, _ := trackingArticleStore()

		adapter := &mocks.AdapterMock{
			FetchFunc: func(ctx context.Context, src db.Source, category db.Category) ([]provider.Candidate, error) {
				return candidatesFor(category, 3), nil
			},
		}
		registry := &mocks.AdapterRegistryMock{
			GetFunc: func(slug string) (provider.Adapter, bool) { return adapter, true },
		}
		return sources, categories, articles, registry
	}

	t.Run("success", func(t *testing.T) {
		src := testSource(1, "guardian")
		sources, categories, articles, registry := makeFixtures(&src)

		agg := New(Params{Sources: sources, Categories: categories, Articles: articles, Registry: registry})

		result, err := agg.RunOne(context.Background(), "guardian", false)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 3, result.Count)
		assert.Len(t, sources.MarkSourceFetchedCalls(), 1)
	})

	t.Run("unknown slug", func(t *testing.T) {
		sources, categories, articles, registry := makeFixtures(nil)

		agg := New(Params{Sources: sources, Categories: categories, Articles: articles, Registry: registry})

		_, err := agg.RunOne(context.Background(), "nope", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("disabled source", func(t *testing.T) {
		src := testSource(1, "guardian")
		src.Enabled = false
		sources, categories, articles, registry := makeFixtures(&src)

		agg := New(Params{Sources: sources, Categories: categories, Articles: articles, Registry: registry})

		_, err := agg.RunOne(context.Background(), "guardian", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
		assert.Empty(t, sources.MarkSourceFetchedCalls(), "inactive source is not touched")
	})

	t.Run("not ready without force", func(t *testing.T) {
		src := testSource(1, "guardian")
		src.LastFetched.Time = testNow.Add(-10 * time.Minute)
		src.LastFetched.Valid = true
		sources, categories, articles, registry := makeFixtures(&src)

		agg := New(Params{
			Sources: sources, Categories: categories, Articles: articles, Registry: registry,
			NowFn: func() time.Time { return testNow },
		})

		_, err := agg.RunOne(context.Background(), "guardian", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not ready for fetching")
		assert.Empty(t, sources.MarkSourceFetchedCalls())
	})

	t.Run("force bypasses readiness", func(t *testing.T) {
		src := testSource(1, "guardian")
		src.LastFetched.Time = testNow.Add(-10 * time.Minute)
		src.LastFetched.Valid = true
		sources, categories, articles, registry := makeFixtures(&src)

		agg := New(Params{
			Sources: sources, Categories: categories, Articles: articles, Registry: registry,
			NowFn: func() time.Time { return testNow },
		})

		result, err := agg.RunOne(context.Background(), "guardian", true)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 3, result.Count)
		assert.Len(t, sources.MarkSourceFetchedCalls(), 1)
	})

	t.Run("no adapter propagates error", func(t *testing.T) {
		src := testSource(1, "broken")
		sources, categories, articles, _ := makeFixtures(&src)
		registry := &mocks.AdapterRegistryMock{
			GetFunc: func(slug string) (provider.Adapter, bool) { return nil, false },
		}

		agg := New(Params{Sources: sources, Categories: categories, Articles: articles, Registry: registry})

		_, err := agg.RunOne(context.Background(), "broken", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoAdapter)
		assert.Contains(t, err.Error(), "no fetch method")
		assert.Len(t, sources.MarkSourceFetchedCalls(), 1, "attempted source advances its clock even on failure")
	})
}

func TestAggregator_SaveCandidate(t *testing.T) {
	articles, _ := trackingArticleStore()
	agg := New(Params{Articles: articles, NowFn: func() time.Time { return testNow }})

	src := testSource(1, "guardian")
	category := testCategories()[0]

	t.Run("empty url dropped", func(t *testing.T) {
		created, err := agg.saveCandidate(context.Background(), src, category, provider.Candidate{Title: "no url"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Empty(t, articles.CreateArticleCalls())
	})

	t.Run("zero published defaults to now", func(t *testing.T) {
		created, err := agg.saveCandidate(context.Background(), src, category, provider.Candidate{
			Title: "undated", URL: "https://example.com/undated",
		})
		require.NoError(t, err)
		assert.True(t, created)

		calls := articles.CreateArticleCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, testNow, calls[0].Article.Published)
	})

	t.Run("optional fields stored as nulls when empty", func(t *testing.T) {
		created, err := agg.saveCandidate(context.Background(), src, category, provider.Candidate{
			Title: "bare", URL: "https://example.com/bare", Published: testNow,
		})
		require.NoError(t, err)
		assert.True(t, created)

		calls := articles.CreateArticleCalls()
		stored := calls[len(calls)-1].Article
		assert.False(t, stored.Content.Valid)
		assert.False(t, stored.ImageURL.Valid)
		assert.False(t, stored.Author.Valid)
		assert.False(t, stored.ExternalID.Valid)
		assert.Equal(t, src.ID, stored.SourceID)
		assert.Equal(t, category.ID, stored.CategoryID)
		assert.True(t, stored.Enabled)
	})
}

func TestSummary(t *testing.T) {
	results := []FetchResult{
		{Source: "guardian", Success: true, Count: 5, Message: "fetched 5 articles from guardian"},
		{Source: "broken", Success: false, Count: 0, Message: "no fetch method for source \"broken\""},
	}

	out := Summary(results)
	assert.Contains(t, out, `"source": "guardian"`)
	assert.Contains(t, out, `"success": true`)
	assert.Contains(t, out, `"count": 5`)
	assert.Contains(t, out, `"success": false`)
}
