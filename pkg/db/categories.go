package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// UpsertCategory creates a category or updates an existing one, keyed by slug
func (db *DB) UpsertCategory(ctx context.Context, cat *Category) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO categories (slug, name, sort_order, enabled)
			VALUES (:slug, :name, :sort_order, :enabled)
			ON CONFLICT(slug) DO UPDATE SET
				name = excluded.name,
				sort_order = excluded.sort_order,
				enabled = excluded.enabled
		`
		if _, err := db.conn.NamedExecContext(ctx, query, cat); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert category: %w", err)}
		}
		return nil
	})
}

// GetCategoryBySlug retrieves a category by its slug
func (db *DB) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var cat Category
	query := `SELECT * FROM categories WHERE slug = ?`
	err := db.conn.GetContext(ctx, &cat, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %q not found", slug)
		}
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return &cat, nil
}

// GetEnabledCategories retrieves enabled categories in sort order
func (db *DB) GetEnabledCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	query := `SELECT * FROM categories WHERE enabled = 1 ORDER BY sort_order, name`
	err := db.conn.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("get enabled categories: %w", err)
	}
	return categories, nil
}
