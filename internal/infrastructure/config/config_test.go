package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
database:
  driver: sqlite
  sqlite_path: test.db
ratelimit:
  public_inquiry_per_minute: 3
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("INSTAMAKAAN_AUTH_JWT_SECRET", "from-env")

	cfg, err := Load("test", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.True(t, cfg.Database.IsSQLite())
	assert.Equal(t, 3, cfg.RateLimit.PublicInquiryPerMinute)
	assert.Equal(t, "from-env", cfg.Auth.JWT.Secret)
	assert.Equal(t, "instamakaan:inquiry:events", cfg.Notification.EventChannel)
	assert.Same(t, cfg, Get())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
