package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		path := writeConfig(t, `
database:
  path: `+filepath.Join(t.TempDir(), "h.db")+`
redis:
  address: localhost:6379
  db: 2
backup:
  enabled: true
  interval_hours: 12
  retention_days: 7
reminders:
  enabled: true
  check_interval_seconds: 30
monitoring:
  prometheus_enabled: true
  prometheus_port: 9100
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "localhost:6379", cfg.Redis.Address)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.True(t, cfg.Backup.Enabled)
		assert.Equal(t, 12*time.Hour, cfg.BackupInterval())
		assert.Equal(t, 30*time.Second, cfg.ReminderCheckInterval())
		assert.True(t, cfg.Monitoring.PrometheusEnabled)
	})

	t.Run("Defaults", func(t *testing.T) {
		oldWD, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(oldWD) })

		path := writeConfig(t, `reminders: {enabled: false}`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "data/hydromate.db", cfg.Database.Path)
		assert.Equal(t, time.Minute, cfg.ReminderCheckInterval())
		assert.Equal(t, 24*time.Hour, cfg.BackupInterval())
	})

	t.Run("EnvExpansion", func(t *testing.T) {
		t.Setenv("TEST_REDIS_ADDR", "10.0.0.5:6379")

		path := writeConfig(t, `
database:
  path: `+filepath.Join(t.TempDir(), "h.db")+`
redis:
  address: ${TEST_REDIS_ADDR}
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.5:6379", cfg.Redis.Address)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
