package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// UpsertSource creates a source or updates the configurable fields of an existing one,
// keyed by slug. The last_fetched timestamp is preserved on update.
func (db *DB) UpsertSource(ctx context.Context, src *Source) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO sources (slug, name, api_url, api_key, api_config, language, country, enabled, fetch_interval)
			VALUES (:slug, :name, :api_url, :api_key, :api_config, :language, :country, :enabled, :fetch_interval)
			ON CONFLICT(slug) DO UPDATE SET
				name = excluded.name,
				api_url = excluded.api_url,
				api_key = excluded.api_key,
				api_config = excluded.api_config,
				language = excluded.language,
				country = excluded.country,
				enabled = excluded.enabled,
				fetch_interval = excluded.fetch_interval,
				updated_at = CURRENT_TIMESTAMP
		`
		if _, err := db.conn.NamedExecContext(ctx, query, src); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert source: %w", err)}
		}
		return nil
	})
}

// GetSource retrieves a source by ID
func (db *DB) GetSource(ctx context.Context, id int64) (*Source, error) {
	var src Source
	query := `SELECT * FROM sources WHERE id = ?`
	err := db.conn.GetContext(ctx, &src, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("source not found")
		}
		return nil, fmt.Errorf("get source: %w", err)
	}
	return &src, nil
}

// GetSourceBySlug retrieves a source by its slug
func (db *DB) GetSourceBySlug(ctx context.Context, slug string) (*Source, error) {
	var src Source
	query := `SELECT * FROM sources WHERE slug = ?`
	err := db.conn.GetContext(ctx, &src, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("source %q not found", slug)
		}
		return nil, fmt.Errorf("get source by slug: %w", err)
	}
	return &src, nil
}

// GetEnabledSources retrieves all enabled sources in id order
func (db *DB) GetEnabledSources(ctx context.Context) ([]Source, error) {
	var sources []Source
	query := `SELECT * FROM sources WHERE enabled = 1 ORDER BY id`
	err := db.conn.SelectContext(ctx, &sources, query)
	if err != nil {
		return nil, fmt.Errorf("get enabled sources: %w", err)
	}
	return sources, nil
}

// GetReadySources retrieves enabled sources whose fetch interval has elapsed
// relative to the given time. Never-fetched sources are always included.
func (db *DB) GetReadySources(ctx context.Context, now time.Time) ([]Source, error) {
	var sources []Source
	query := `
		SELECT * FROM sources
		WHERE enabled = 1
		  AND (last_fetched IS NULL
		       OR strftime('%s', last_fetched) + fetch_interval * 60 <= strftime('%s', ?))
		ORDER BY id
	`
	err := db.conn.SelectContext(ctx, &sources, query, now.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return nil, fmt.Errorf("get ready sources: %w", err)
	}
	return sources, nil
}

// MarkSourceFetched sets the last fetched timestamp. Called exactly once per
// attempted source per run, regardless of fetch outcome, so a failing source
// does not get retried faster than its interval.
func (db *DB) MarkSourceFetched(ctx context.Context, sourceID int64, at time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE sources
			SET last_fetched = ?,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`
		if _, err := db.conn.ExecContext(ctx, query, at.UTC().Format("2006-01-02 15:04:05"), sourceID); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark source fetched: %w", err)}
		}
		return nil
	})
}
