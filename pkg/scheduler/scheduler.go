package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newshub/pkg/aggregator"
)

//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator
//go:generate moq -out mocks/article_cleaner.go -pkg mocks -skip-ensure -fmt goimports . ArticleCleaner

// Aggregator runs the news aggregation pipeline
type Aggregator interface {
	RunAll(ctx context.Context) ([]aggregator.FetchResult, error)
}

// ArticleCleaner removes articles older than a cutoff
type ArticleCleaner interface {
	DeleteArticlesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Config holds scheduler configuration
type Config struct {
	UpdateInterval  time.Duration
	CleanupInterval time.Duration
	RetentionDays   int
}

// Scheduler triggers periodic aggregation runs and retention cleanup.
// Per-source fetch pacing is the aggregator's concern; the scheduler only
// decides how often ready sources are checked.
type Scheduler struct {
	aggregator      Aggregator
	cleaner         ArticleCleaner
	updateInterval  time.Duration
	cleanupInterval time.Duration
	retentionDays   int
	wg              sync.WaitGroup
	cancel          context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(agg Aggregator, cleaner ArticleCleaner, cfg Config) *Scheduler {
	if cfg.UpdateInterval == 0 {
		cfg.UpdateInterval = 15 * time.Minute
	}
	if cfg.CleanupInterval == 0 {
		cfg.CleanupInterval = 24 * time.Hour
	}
	if cfg.RetentionDays == 0 {
		cfg.RetentionDays = 30
	}
	return &Scheduler{
		aggregator:      agg,
		cleaner:         cleaner,
		updateInterval:  cfg.UpdateInterval,
		cleanupInterval: cfg.CleanupInterval,
		retentionDays:   cfg.RetentionDays,
	}
}

// Start begins the scheduler workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.aggregationWorker(ctx)

	s.wg.Add(1)
	go s.cleanupWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v, cleanup interval %v, retention %d days",
		s.updateInterval, s.cleanupInterval, s.retentionDays)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// aggregationWorker periodically runs aggregation for all ready sources
func (s *Scheduler) aggregationWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	// run immediately on start
	s.runAggregation(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAggregation(ctx)
		}
	}
}

// runAggregation triggers one aggregation pass and logs the summary
func (s *Scheduler) runAggregation(ctx context.Context) {
	results, err := s.aggregator.RunAll(ctx)
	if err != nil {
		lgr.Printf("[ERROR] aggregation run failed: %v", err)
		return
	}

	total, succeeded := 0, 0
	for _, res := range results {
		if res.Success {
			succeeded++
			total += res.Count
			continue
		}
		lgr.Printf("[WARN] source %s failed: %s", res.Source, res.Message)
	}
	lgr.Printf("[INFO] aggregation completed: %d sources processed, %d succeeded, %d new articles",
		len(results), succeeded, total)
}

// cleanupWorker periodically removes articles past retention
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCleanup(ctx)
		}
	}
}

// runCleanup deletes articles older than the retention window
func (s *Scheduler) runCleanup(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.cleaner.DeleteArticlesBefore(ctx, cutoff)
	if err != nil {
		lgr.Printf("[ERROR] cleanup failed: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] cleanup removed %d articles older than %d days", deleted, s.retentionDays)
	}
}
