package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstolbov/ytstats"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("YOUTUBE_API_KEY", "")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.HTTP().Timeout)
		assert.Equal(t, "info", cfg.Logging().Level)

		_, err = cfg.APIKey()
		assert.ErrorIs(t, err, ytstats.ErrMissingAPIKey)
	})

	t.Run("api key from environment", func(t *testing.T) {
		t.Setenv("YOUTUBE_API_KEY", "env-key")

		cfg, err := Load("")
		require.NoError(t, err)

		key, err := cfg.APIKey()
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
	})

	t.Run("values from config file", func(t *testing.T) {
		t.Setenv("YOUTUBE_API_KEY", "")
		path := filepath.Join(t.TempDir(), "ytstats.toml")
		content := `
[youtube]
api_key = "file-key"

[logging]
level = "debug"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		key, err := cfg.APIKey()
		require.NoError(t, err)
		assert.Equal(t, "file-key", key)
		assert.Equal(t, "debug", cfg.Logging().Level)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("YOUTUBE_API_KEY", "env-key")
		t.Setenv("YTSTATS_LOGGING_LEVEL", "trace")
		path := filepath.Join(t.TempDir(), "ytstats.toml")
		content := `
[youtube]
api_key = "file-key"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		key, err := cfg.APIKey()
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
		assert.Equal(t, "trace", cfg.Logging().Level)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
