package newsapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("NEWS_API_KEY", "key")
		t.Setenv("NEWS_API_URL", "")
		t.Setenv("NEWS_API_TIMEOUT", "")
		t.Setenv("SEED_ISOLATE_CATEGORIES", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "key", cfg.APIKey)
		assert.Equal(t, defaultTimeout, cfg.Timeout)
		assert.False(t, cfg.IsolateFailures)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("NEWS_API_KEY", "key")
		t.Setenv("NEWS_API_URL", "http://localhost:9999/v2")
		t.Setenv("NEWS_API_TIMEOUT", "5s")
		t.Setenv("SEED_ISOLATE_CATEGORIES", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999/v2", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.IsolateFailures)

		client, err := NewClientFromConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, "localhost:9999", client.base.Host)
		assert.Equal(t, 5*time.Second, client.http.Timeout)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Setenv("NEWS_API_KEY", "")
		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("NEWS_API_KEY", "key")
		t.Setenv("NEWS_API_TIMEOUT", "soon")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad isolate flag", func(t *testing.T) {
		t.Setenv("NEWS_API_KEY", "key")
		t.Setenv("NEWS_API_TIMEOUT", "")
		t.Setenv("SEED_ISOLATE_CATEGORIES", "maybe")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
