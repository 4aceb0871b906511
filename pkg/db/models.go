package db

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringMap stores a JSON object column as map[string]string
type StringMap map[string]string

// Value implements driver.Valuer
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal string map: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (m *StringMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*m = StringMap{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), m)
	case []byte:
		return json.Unmarshal(v, m)
	default:
		return fmt.Errorf("unsupported string map type %T", src)
	}
}

// Int64List stores a JSON array column as []int64
type Int64List []int64

// Value implements driver.Valuer
func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal int64 list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *Int64List) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = Int64List{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("unsupported int64 list type %T", src)
	}
}

// Source represents a configured external news provider
type Source struct {
	ID            int64        `db:"id" json:"id"`
	Slug          string       `db:"slug" json:"slug"`
	Name          string       `db:"name" json:"name"`
	APIURL        string       `db:"api_url" json:"api_url"`
	APIKey        string       `db:"api_key" json:"-"`
	APIConfig     StringMap    `db:"api_config" json:"api_config,omitempty"`
	Language      string       `db:"language" json:"language"`
	Country       string       `db:"country" json:"country"`
	Enabled       bool         `db:"enabled" json:"enabled"`
	FetchInterval int          `db:"fetch_interval" json:"fetch_interval"` // minutes
	LastFetched   sql.NullTime `db:"last_fetched" json:"-"`
	CreatedAt     time.Time    `db:"created_at" json:"-"`
	UpdatedAt     time.Time    `db:"updated_at" json:"-"`
}

// ReadyForFetch reports whether enough time has elapsed since the last fetch.
// A source that was never fetched is always ready.
func (s *Source) ReadyForFetch(now time.Time) bool {
	if !s.Enabled {
		return false
	}
	if !s.LastFetched.Valid {
		return true
	}
	next := s.LastFetched.Time.Add(time.Duration(s.FetchInterval) * time.Minute)
	return !now.Before(next)
}

// Category represents a taxonomy tag used to scope provider queries
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Name      string    `db:"name" json:"name"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Enabled   bool      `db:"enabled" json:"enabled"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// Article represents a normalized news item
type Article struct {
	ID          int64          `db:"id" json:"id"`
	SourceID    int64          `db:"source_id" json:"source_id"`
	CategoryID  int64          `db:"category_id" json:"category_id"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Content     sql.NullString `db:"content" json:"content,omitempty"`
	URL         string         `db:"url" json:"url"`
	ImageURL    sql.NullString `db:"image_url" json:"image_url,omitempty"`
	Author      sql.NullString `db:"author" json:"author,omitempty"`
	ExternalID  sql.NullString `db:"external_id" json:"external_id,omitempty"`
	Metadata    sql.NullString `db:"metadata" json:"-"`
	Published   time.Time      `db:"published" json:"published"`
	Enabled     bool           `db:"enabled" json:"-"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// ArticleDetail is an article joined with its source and category names
type ArticleDetail struct {
	Article
	SourceSlug   string `db:"source_slug" json:"source_slug"`
	SourceName   string `db:"source_name" json:"source_name"`
	CategorySlug string `db:"category_slug" json:"category_slug"`
	CategoryName string `db:"category_name" json:"category_name"`
}

// UserPreference holds per-user personalization settings
type UserPreference struct {
	ID                  int64     `db:"id" json:"id"`
	UserID              string    `db:"user_id" json:"user_id"`
	PreferredSources    Int64List `db:"preferred_sources" json:"preferred_sources"`
	PreferredCategories Int64List `db:"preferred_categories" json:"preferred_categories"`
	ExcludedSources     Int64List `db:"excluded_sources" json:"excluded_sources"`
	ExcludedCategories  Int64List `db:"excluded_categories" json:"excluded_categories"`
	ItemsPerPage        int       `db:"items_per_page" json:"items_per_page"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}
