package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-pkgz/repeater/v2"
)

// ArticlesRequest holds optional filters for article listing
type ArticlesRequest struct {
	CategoryID int64
	SourceID   int64
	Search     string
	Since      time.Time

	// personalization lists, empty means no constraint
	PreferredSources    []int64
	PreferredCategories []int64
	ExcludedSources     []int64
	ExcludedCategories  []int64

	Limit  int
	Offset int
}

// CreateArticle inserts a new article. Returns false without error when the
// article's url already exists, the storage-level backstop for concurrent dedup.
func (db *DB) CreateArticle(ctx context.Context, article *Article) (bool, error) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	inserted := false
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (source_id, category_id, title, description, content, url,
			                      image_url, author, external_id, metadata, published, enabled)
			VALUES (:source_id, :category_id, :title, :description, :content, :url,
			        :image_url, :author, :external_id, :metadata, :published, :enabled)
			ON CONFLICT(url) DO NOTHING
		`
		result, err := db.conn.NamedExecContext(ctx, query, article)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert article: %w", err)}
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}

		if rowsAffected > 0 {
			id, err := result.LastInsertId()
			if err != nil {
				return &criticalError{err: fmt.Errorf("get last insert id: %w", err)}
			}
			article.ID = id
			inserted = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// ArticleExists checks whether any stored article matches the url or, when
// non-empty, the external id. The external id check is global across sources.
func (db *DB) ArticleExists(ctx context.Context, url, externalID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM articles WHERE url = ? OR (? != '' AND external_id = ?))`
	err := db.conn.GetContext(ctx, &exists, query, url, externalID, externalID)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

const articleDetailColumns = `a.*,
	s.slug AS source_slug, s.name AS source_name,
	c.slug AS category_slug, c.name AS category_name`

// GetArticle retrieves an active article with source and category names
func (db *DB) GetArticle(ctx context.Context, id int64) (*ArticleDetail, error) {
	var article ArticleDetail
	query := `
		SELECT ` + articleDetailColumns + `
		FROM articles a
		JOIN sources s ON s.id = a.source_id
		JOIN categories c ON c.id = a.category_id
		WHERE a.id = ? AND a.enabled = 1
	`
	err := db.conn.GetContext(ctx, &article, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &article, nil
}

// ListArticles retrieves active articles matching the request filters, newest
// first, and the total count for the same filters.
func (db *DB) ListArticles(ctx context.Context, req ArticlesRequest) ([]ArticleDetail, int64, error) {
	base := sq.Select(articleDetailColumns).
		From("articles a").
		Join("sources s ON s.id = a.source_id").
		Join("categories c ON c.id = a.category_id")

	where := articlesFilter(req)
	base = base.Where(where)

	if req.Limit <= 0 {
		req.Limit = 20
	}
	query, args, err := base.
		OrderBy("a.published DESC", "a.created_at DESC").
		Limit(uint64(req.Limit)).   //nolint:gosec // limit checked above
		Offset(uint64(req.Offset)). //nolint:gosec // negative offsets never get here
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build articles query: %w", err)
	}

	var articles []ArticleDetail
	if err := db.conn.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	countQuery, countArgs, err := sq.Select("COUNT(*)").From("articles a").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build articles count query: %w", err)
	}

	var total int64
	if err := db.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	return articles, total, nil
}

// articlesFilter builds the shared WHERE clause for listing and counting
func articlesFilter(req ArticlesRequest) sq.And {
	where := sq.And{sq.Eq{"a.enabled": true}}

	if req.CategoryID != 0 {
		where = append(where, sq.Eq{"a.category_id": req.CategoryID})
	}
	if req.SourceID != 0 {
		where = append(where, sq.Eq{"a.source_id": req.SourceID})
	}
	if req.Search != "" {
		like := "%" + req.Search + "%"
		where = append(where, sq.Or{sq.Like{"a.title": like}, sq.Like{"a.description": like}})
	}
	if !req.Since.IsZero() {
		where = append(where, sq.Expr("strftime('%s', a.published) >= strftime('%s', ?)",
			req.Since.UTC().Format("2006-01-02 15:04:05")))
	}
	if len(req.PreferredSources) > 0 {
		where = append(where, sq.Eq{"a.source_id": req.PreferredSources})
	}
	if len(req.PreferredCategories) > 0 {
		where = append(where, sq.Eq{"a.category_id": req.PreferredCategories})
	}
	if len(req.ExcludedSources) > 0 {
		where = append(where, sq.NotEq{"a.source_id": req.ExcludedSources})
	}
	if len(req.ExcludedCategories) > 0 {
		where = append(where, sq.NotEq{"a.category_id": req.ExcludedCategories})
	}

	return where
}

// CountArticles returns the total number of stored articles
func (db *DB) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM articles`)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// DeleteArticlesBefore removes articles published before the cutoff, returning
// the number of deleted rows. Used by the retention cleanup job.
func (db *DB) DeleteArticlesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var deleted int64
	err := retrier.Do(ctx, func() error {
		query := `DELETE FROM articles WHERE strftime('%s', published) < strftime('%s', ?)`
		result, err := db.conn.ExecContext(ctx, query, cutoff.UTC().Format("2006-01-02 15:04:05"))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("delete old articles: %w", err)}
		}
		deleted, err = result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
