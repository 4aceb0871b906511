package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{
			Sources: []Source{
				{Slug: "newsapi", Name: "NewsAPI", APIURL: "https://newsapi.org"},
			},
			Categories: []Category{
				{Slug: "technology", Name: "Technology"},
			},
		}
		require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("source missing required field", func(t *testing.T) {
		cfg := &Config{
			Sources: []Source{{Slug: "newsapi"}},
		}
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required fields")
	})

	t.Run("category missing required field", func(t *testing.T) {
		cfg := &Config{
			Categories: []Category{{Slug: "tech"}},
		}
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required fields")
	})
}
