package aggregator

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newshub/pkg/db"
	"github.com/umputun/newshub/pkg/provider"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/category_store.go -pkg mocks -skip-ensure -fmt goimports . CategoryStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/adapter_registry.go -pkg mocks -skip-ensure -fmt goimports . AdapterRegistry
//go:generate moq -out mocks/adapter.go -pkg mocks -skip-ensure -fmt goimports ../provider Adapter

// ErrNoAdapter indicates a source slug with no registered adapter, a
// configuration error rather than a network one.
var ErrNoAdapter = errors.New("no adapter registered")

// SourceStore provides source enumeration and the single mutation the
// pipeline performs on it
type SourceStore interface {
	GetReadySources(ctx context.Context, now time.Time) ([]db.Source, error)
	GetSourceBySlug(ctx context.Context, slug string) (*db.Source, error)
	MarkSourceFetched(ctx context.Context, sourceID int64, at time.Time) error
}

// CategoryStore provides the active category taxonomy
type CategoryStore interface {
	GetEnabledCategories(ctx context.Context) ([]db.Category, error)
}

// ArticleStore provides the insert-if-absent and exists-by-key operations the
// pipeline needs
type ArticleStore interface {
	ArticleExists(ctx context.Context, url, externalID string) (bool, error)
	CreateArticle(ctx context.Context, article *db.Article) (bool, error)
}

// AdapterRegistry resolves a source slug to its provider adapter
type AdapterRegistry interface {
	Get(slug string) (provider.Adapter, bool)
}

// FetchResult is the per-source outcome of one aggregation run
type FetchResult struct {
	Source  string `json:"source"`
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// Params holds aggregator dependencies and settings
type Params struct {
	Sources    SourceStore
	Categories CategoryStore
	Articles   ArticleStore
	Registry   AdapterRegistry
	MaxWorkers int              // concurrent category fetches per source
	NowFn      func() time.Time // injected clock, defaults to time.Now
}

// Aggregator orchestrates the per-source aggregation pipeline: adapter
// dispatch, per-category fetching, dedup and persistence, readiness clock
// updates, and the per-run result summary.
type Aggregator struct {
	sources    SourceStore
	categories CategoryStore
	articles   ArticleStore
	registry   AdapterRegistry
	maxWorkers int
	nowFn      func() time.Time
	dbMutex    sync.Mutex // serialize database writes
}

// New creates an aggregator
func New(params Params) *Aggregator {
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}
	if params.NowFn == nil {
		params.NowFn = time.Now
	}
	return &Aggregator{
		sources:    params.Sources,
		categories: params.Categories,
		articles:   params.Articles,
		registry:   params.Registry,
		maxWorkers: params.MaxWorkers,
		nowFn:      params.NowFn,
	}
}

// RunAll processes every ready source sequentially and returns the per-source
// summary. One source's failure never aborts the run; it is recorded as a
// failed result and processing continues with the next source.
func (a *Aggregator) RunAll(ctx context.Context) ([]FetchResult, error) {
	sources, err := a.sources.GetReadySources(ctx, a.nowFn())
	if err != nil {
		return nil, fmt.Errorf("get ready sources: %w", err)
	}

	lgr.Printf("[INFO] aggregating %d ready sources", len(sources))

	results := make([]FetchResult, 0, len(sources))
	for _, src := range sources {
		results = append(results, a.processSource(ctx, src))
	}
	return results, nil
}

// RunOne processes a single source by slug, used for forced or manual runs.
// Unlike RunAll it propagates configuration and unexpected errors to the caller.
func (a *Aggregator) RunOne(ctx context.Context, slug string, force bool) (FetchResult, error) {
	src, err := a.sources.GetSourceBySlug(ctx, slug)
	if err != nil {
		return FetchResult{}, fmt.Errorf("lookup source: %w", err)
	}
	if !src.Enabled {
		return FetchResult{}, fmt.Errorf("source %q is not active", slug)
	}
	if !force && !src.ReadyForFetch(a.nowFn()) {
		next := src.LastFetched.Time.Add(time.Duration(src.FetchInterval) * time.Minute)
		return FetchResult{}, fmt.Errorf("source %q is not ready for fetching until %s", slug, next.Format(time.RFC3339))
	}

	count, fetchErr := a.fetchSource(ctx, *src)
	a.markFetched(ctx, *src)

	if fetchErr != nil {
		return FetchResult{}, fetchErr
	}
	return FetchResult{
		Source:  src.Name,
		Success: true,
		Count:   count,
		Message: fmt.Sprintf("fetched %d articles from %s", count, src.Name),
	}, nil
}

// processSource runs the per-source pipeline and absorbs any failure into the
// result, so the batch in RunAll is protected.
func (a *Aggregator) processSource(ctx context.Context, src db.Source) FetchResult {
	count, err := a.fetchSource(ctx, src)
	a.markFetched(ctx, src)

	if err != nil {
		lgr.Printf("[ERROR] failed to fetch from source %s: %v", src.Name, err)
		return FetchResult{Source: src.Name, Success: false, Count: 0, Message: err.Error()}
	}
	return FetchResult{
		Source:  src.Name,
		Success: true,
		Count:   count,
		Message: fmt.Sprintf("fetched %d articles from %s", count, src.Name),
	}
}

// markFetched advances the source's readiness clock. Called exactly once per
// attempted source regardless of fetch outcome, so a broken source is not
// retried faster than its interval.
func (a *Aggregator) markFetched(ctx context.Context, src db.Source) {
	a.dbMutex.Lock()
	defer a.dbMutex.Unlock()
	if err := a.sources.MarkSourceFetched(ctx, src.ID, a.nowFn()); err != nil {
		lgr.Printf("[ERROR] failed to mark source %s fetched: %v", src.Slug, err)
	}
}

type taggedCandidate struct {
	category  db.Category
	candidate provider.Candidate
}

// fetchSource fetches all active categories for one source and persists the
// candidates that survive dedup, returning the inserted count
func (a *Aggregator) fetchSource(ctx context.Context, src db.Source) (int, error) {
	adapter, ok := a.registry.Get(src.Slug)
	if !ok {
		return 0, fmt.Errorf("no fetch method for source %q: %w", src.Slug, ErrNoAdapter)
	}

	categories, err := a.categories.GetEnabledCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("get categories: %w", err)
	}

	// fetch categories concurrently, bounded per source so one provider is
	// never hit with unbounded parallel requests
	var mu sync.Mutex
	var collected []taggedCandidate

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxWorkers)

	for _, category := range categories {
		g.Go(func() error {
			candidates, fetchErr := adapter.Fetch(gctx, src, category)
			if fetchErr != nil {
				// a single category's failure must not abort the source
				lgr.Printf("[WARN] fetch %s/%s failed: %v", src.Slug, category.Slug, fetchErr)
				return nil
			}
			mu.Lock()
			for _, candidate := range candidates {
				collected = append(collected, taggedCandidate{category: category, candidate: candidate})
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // category errors are absorbed above

	inserted := 0
	for _, tc := range collected {
		isNew, saveErr := a.saveCandidate(ctx, src, tc.category, tc.candidate)
		if saveErr != nil {
			lgr.Printf("[WARN] failed to save article %s: %v", tc.candidate.URL, saveErr)
			continue
		}
		if isNew {
			inserted++
		}
	}

	lgr.Printf("[DEBUG] source %s: %d candidates, %d inserted", src.Slug, len(collected), inserted)
	return inserted, nil
}

// saveCandidate persists a candidate unless it duplicates a stored article by
// url or non-empty external id. The pre-check is advisory; the url uniqueness
// constraint resolves the check-then-act race, and a conflicting insert counts
// as "not new" rather than an error.
func (a *Aggregator) saveCandidate(ctx context.Context, src db.Source, category db.Category, candidate provider.Candidate) (bool, error) {
	if candidate.URL == "" {
		return false, nil
	}

	exists, err := a.articles.ArticleExists(ctx, candidate.URL, candidate.ExternalID)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	if exists {
		return false, nil
	}

	published := candidate.Published
	if published.IsZero() {
		published = a.nowFn()
	}

	article := &db.Article{
		SourceID:    src.ID,
		CategoryID:  category.ID,
		Title:       candidate.Title,
		Description: candidate.Description,
		Content:     nullString(candidate.Content),
		URL:         candidate.URL,
		ImageURL:    nullString(candidate.ImageURL),
		Author:      nullString(candidate.Author),
		ExternalID:  nullString(candidate.ExternalID),
		Metadata:    nullString(string(candidate.Metadata)),
		Published:   published,
		Enabled:     true,
	}

	a.dbMutex.Lock()
	defer a.dbMutex.Unlock()
	created, err := a.articles.CreateArticle(ctx, article)
	if err != nil {
		return false, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

func nullString(s string) sql.NullString {
	if s == "" || s == "null" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Summary renders run results as a compact JSON document for logs and CLI output
func Summary(results []FetchResult) string {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", results)
	}
	return string(data)
}
