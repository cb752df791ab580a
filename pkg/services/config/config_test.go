package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		cfg, err := LoadServer("")
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
		assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.yaml")
		content := "host: 127.0.0.1\nport: 9100\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadServer(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9100", cfg.Addr())
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9200")

		cfg, err := LoadServer("")
		require.NoError(t, err)
		assert.Equal(t, 9200, cfg.Port)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadServer(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
