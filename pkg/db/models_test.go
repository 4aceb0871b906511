package db

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSource_ReadyForFetch(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		source Source
		now    time.Time
		want   bool
	}{
		{
			name:   "disabled source never ready",
			source: Source{Enabled: false},
			now:    base,
			want:   false,
		},
		{
			name:   "never fetched always ready",
			source: Source{Enabled: true, FetchInterval: 60},
			now:    base,
			want:   true,
		},
		{
			name: "interval not elapsed",
			source: Source{
				Enabled:       true,
				FetchInterval: 60,
				LastFetched:   sql.NullTime{Time: base.Add(-30 * time.Minute), Valid: true},
			},
			now:  base,
			want: false,
		},
		{
			name: "exactly at the boundary",
			source: Source{
				Enabled:       true,
				FetchInterval: 60,
				LastFetched:   sql.NullTime{Time: base.Add(-60 * time.Minute), Valid: true},
			},
			now:  base,
			want: true,
		},
		{
			name: "interval elapsed",
			source: Source{
				Enabled:       true,
				FetchInterval: 60,
				LastFetched:   sql.NullTime{Time: base.Add(-2 * time.Hour), Valid: true},
			},
			now:  base,
			want: true,
		},
		{
			name: "disabled overrides elapsed interval",
			source: Source{
				Enabled:       false,
				FetchInterval: 60,
				LastFetched:   sql.NullTime{Time: base.Add(-2 * time.Hour), Valid: true},
			},
			now:  base,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.ReadyForFetch(tt.now))
		})
	}
}

func TestStringMap_ValueScan(t *testing.T) {
	m := StringMap{"everything": "/v2/everything"}

	v, err := m.Value()
	assert.NoError(t, err)

	var scanned StringMap
	assert.NoError(t, scanned.Scan(v))
	assert.Equal(t, m, scanned)

	t.Run("nil map stores empty object", func(t *testing.T) {
		var empty StringMap
		v, err := empty.Value()
		assert.NoError(t, err)
		assert.Equal(t, "{}", v)
	})

	t.Run("null column scans as empty map", func(t *testing.T) {
		var scanned StringMap
		assert.NoError(t, scanned.Scan(nil))
		assert.NotNil(t, scanned)
		assert.Empty(t, scanned)
	})
}

func TestInt64List_ValueScan(t *testing.T) {
	l := Int64List{1, 2, 3}

	v, err := l.Value()
	assert.NoError(t, err)

	var scanned Int64List
	assert.NoError(t, scanned.Scan(v))
	assert.Equal(t, l, scanned)

	t.Run("nil list stores empty array", func(t *testing.T) {
		var empty Int64List
		v, err := empty.Value()
		assert.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("null column scans as empty list", func(t *testing.T) {
		var scanned Int64List
		assert.NoError(t, scanned.Scan(nil))
		assert.NotNil(t, scanned)
		assert.Empty(t, scanned)
	})
}
