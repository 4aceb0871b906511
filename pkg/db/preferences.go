package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// GetPreference retrieves preferences for a user, returning defaults when the
// user has no stored record yet.
func (db *DB) GetPreference(ctx context.Context, userID string) (*UserPreference, error) {
	var pref UserPreference
	query := `SELECT * FROM user_preferences WHERE user_id = ?`
	err := db.conn.GetContext(ctx, &pref, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &UserPreference{
				UserID:              userID,
				PreferredSources:    Int64List{},
				PreferredCategories: Int64List{},
				ExcludedSources:     Int64List{},
				ExcludedCategories:  Int64List{},
				ItemsPerPage:        20,
			}, nil
		}
		return nil, fmt.Errorf("get preference: %w", err)
	}
	return &pref, nil
}

// UpsertPreference creates or replaces the preference record for a user
func (db *DB) UpsertPreference(ctx context.Context, pref *UserPreference) error {
	if pref.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if pref.ItemsPerPage <= 0 {
		pref.ItemsPerPage = 20
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO user_preferences (user_id, preferred_sources, preferred_categories,
			                              excluded_sources, excluded_categories, items_per_page)
			VALUES (:user_id, :preferred_sources, :preferred_categories,
			        :excluded_sources, :excluded_categories, :items_per_page)
			ON CONFLICT(user_id) DO UPDATE SET
				preferred_sources = excluded.preferred_sources,
				preferred_categories = excluded.preferred_categories,
				excluded_sources = excluded.excluded_sources,
				excluded_categories = excluded.excluded_categories,
				items_per_page = excluded.items_per_page,
				updated_at = CURRENT_TIMESTAMP
		`
		if _, err := db.conn.NamedExecContext(ctx, query, pref); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert preference: %w", err)}
		}
		return nil
	})
}
