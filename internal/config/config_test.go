package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "time-tracker", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "timetracker.db", cfg.Database.DSN)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 60, cfg.Cache.TTLSec)
	assert.Equal(t, "timetracker.events", cfg.RabbitMQ.Exchange)
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("TT_DB_PATH", "/var/lib/tt/data.db")
	t.Setenv("APP_APP_PORT", "9090")

	yaml := []byte(`
app:
  port: 7000
database:
  driver: sqlite
  dsn: ${TT_DB_PATH}
cache:
  enabled: true
  ttlSec: 15
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tt/data.db", cfg.Database.DSN)
	assert.Equal(t, 9090, cfg.App.Port, "env overrides file")
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 15, cfg.Cache.TTLSec)
	assert.Equal(t, "timetracker:", cfg.Cache.Prefix)
}
