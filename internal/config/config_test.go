package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "https://www.hloov.com", cfg.Gateway.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout())
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileSize())
	assert.Equal(t, 24*time.Hour, cfg.Upload.SessionTTL())
	assert.Equal(t, "default", cfg.Server.DefaultAccount)
}

func TestLoadFromFile(t *testing.T) {
	content := `
server:
  port: 9090
  allowed_origins:
    - https://mersal.example.com
gateway:
  base_url: https://gateway.test
  timeout_seconds: 5
upload:
  max_file_size_mb: 2
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://mersal.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://gateway.test", cfg.Gateway.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout())
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxFileSize())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("HUDHUD_BASE_URL", "https://override.test")
	t.Setenv("DATABASE_URL", "postgres://localhost/mersal_test")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://override.test", cfg.Gateway.BaseURL)
	assert.Equal(t, "postgres://localhost/mersal_test", cfg.Database.URL)
	assert.Equal(t, 7070, cfg.Server.Port)
}
