package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		t.Setenv("IFFY_API_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "iffy.api_key")
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("IFFY_API_KEY", "sk_test")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "sk_test", cfg.Iffy.APIKey)
		assert.Equal(t, "https://www.iffy.com/api", cfg.Iffy.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Iffy.Timeout)
		assert.Equal(t, 8080, cfg.HTTPServer.Port)
		assert.Equal(t, 1000, cfg.History.Size)
		assert.Equal(t, 24*time.Hour, cfg.History.TTL)
		assert.Empty(t, cfg.HTTPServer.AuthToken)
	})

	t.Run("Env Overrides", func(t *testing.T) {
		t.Setenv("IFFY_API_KEY", "sk_test")
		t.Setenv("IFFY_BASE_URL", "http://localhost:3000/api")
		t.Setenv("API_AUTH_TOKEN", "local-token")
		t.Setenv("HISTORY_SIZE", "50")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/api", cfg.Iffy.BaseURL)
		assert.Equal(t, "local-token", cfg.HTTPServer.AuthToken)
		assert.Equal(t, 50, cfg.History.Size)
	})

	t.Run("Invalid History Size", func(t *testing.T) {
		t.Setenv("IFFY_API_KEY", "sk_test")
		t.Setenv("HISTORY_SIZE", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "history.size")
	})

	t.Run("Invalid Port", func(t *testing.T) {
		t.Setenv("IFFY_API_KEY", "sk_test")
		t.Setenv("HTTP_SERVER_PORT", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http_server.port")
	})

	t.Run("Negative Timeout", func(t *testing.T) {
		t.Setenv("IFFY_API_KEY", "sk_test")
		t.Setenv("IFFY_TIMEOUT", "-1s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "iffy.timeout")
	})

	t.Run("Invalid Mode", func(t *testing.T) {
		t.Setenv("IFFY_API_KEY", "sk_test")
		t.Setenv("HTTP_SERVER_MODE", "prod")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http_server.mode")
	})
}
