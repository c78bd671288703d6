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
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "missing.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8083", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 12*time.Hour, cfg.Auth.RefreshTTL)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "restaurant.yaml")
	body := `
server:
  port: "9000"
database:
  driver: sqlite
  dsn: "file::memory:"
auth:
  secret: from-file
  access_ttl: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	assert.Contains(t, cfg.Server.AllowedOrigins, "https://b.example")
}

func TestLoadRejectsBadValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "missing.yaml")

	t.Run("driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("default secret in release", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		_, err := Load()
		assert.ErrorContains(t, err, "jwt secret")

		t.Setenv("JWT_SECRET", "a-real-secret")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "a-real-secret", cfg.Auth.Secret)
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_TTL", "soon")
		_, err := Load()
		assert.Error(t, err)
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
