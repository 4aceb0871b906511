package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newshub/pkg/aggregator"
	"github.com/umputun/newshub/pkg/scheduler/mocks"
)

func TestScheduler_StartStop(t *testing.T) {
	var runs int32
	agg := &mocks.AggregatorMock{
		RunAllFunc: func(ctx context.Context) ([]aggregator.FetchResult, error) {
			atomic.AddInt32(&runs, 1)
			return []aggregator.FetchResult{
				{Source: "guardian", Success: true, Count: 2, Message: "fetched 2 articles from guardian"},
			}, nil
		},
	}
	cleaner := &mocks.ArticleCleanerMock{
		DeleteArticlesBeforeFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, nil
		},
	}

	s := NewScheduler(agg, cleaner, Config{
		UpdateInterval:  50 * time.Millisecond,
		CleanupInterval: time.Hour,
		RetentionDays:   30,
	})

	s.Start(context.Background())

	// first run fires immediately, ticker adds more
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) >= 2
	}, 2*time.Second, 10*time.Millisecond)

	s.Stop()
	after := atomic.LoadInt32(&runs)

	// no further runs after stop
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs))
}

func TestScheduler_AggregationErrorDoesNotStopWorker(t *testing.T) {
	var runs int32
	agg := &mocks.AggregatorMock{
		RunAllFunc: func(ctx context.Context) ([]aggregator.FetchResult, error) {
			n := atomic.AddInt32(&runs, 1)
			if n == 1 {
				return nil, fmt.Errorf("transient failure")
			}
			return nil, nil
		},
	}
	cleaner := &mocks.ArticleCleanerMock{
		DeleteArticlesBeforeFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, nil
		},
	}

	s := NewScheduler(agg, cleaner, Config{UpdateInterval: 30 * time.Millisecond})
	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) >= 3
	}, 2*time.Second, 10*time.Millisecond, "worker keeps running after a failed pass")
}

func TestScheduler_Cleanup(t *testing.T) {
	agg := &mocks.AggregatorMock{
		RunAllFunc: func(ctx context.Context) ([]aggregator.FetchResult, error) {
			return nil, nil
		},
	}

	cutoffs := make(chan time.Time, 10)
	cleaner := &mocks.ArticleCleanerMock{
		DeleteArticlesBeforeFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			cutoffs <- cutoff
			return 3, nil
		},
	}

	s := NewScheduler(agg, cleaner, Config{
		UpdateInterval:  time.Hour,
		CleanupInterval: 50 * time.Millisecond,
		RetentionDays:   7,
	})

	before := time.Now()
	s.Start(context.Background())
	defer s.Stop()

	select {
	case cutoff := <-cutoffs:
		expected := before.AddDate(0, 0, -7)
		assert.WithinDuration(t, expected, cutoff, 5*time.Second, "cutoff is retention days in the past")
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup never ran")
	}
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(nil, nil, Config{})
	require.NotNil(t, s)
	assert.Equal(t, 15*time.Minute, s.updateInterval)
	assert.Equal(t, 24*time.Hour, s.cleanupInterval)
	assert.Equal(t, 30, s.retentionDays)
}
