package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, 10, cfg.Workers.PoolSize)
	assert.Equal(t, 100, cfg.Workers.QueueSize)
	assert.Equal(t, 60, cfg.Workers.RateLimit)

	assert.Equal(t, "memory", cfg.BackgroundTasks.Store)
	assert.Equal(t, 24*time.Hour, cfg.BackgroundTasks.MaxTaskAge)

	assert.True(t, cfg.Pipeline.UseDefaultSkills)
	assert.Equal(t, 256, cfg.Pipeline.ExtractionCacheSize)
	assert.Equal(t, 7*24*time.Hour, cfg.Pipeline.HistoryTTL)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfigFromYAML(t *testing.T) {
	content := `
server:
  port: 9090
  host: "127.0.0.1"
workers:
  rate_limit: 120
pipeline:
  use_default_skills: false
  extraction_cache_size: 64
background_tasks:
  store: "redis"
logging:
  level: "debug"
`
	path := writeTempConfig(t, content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 120, cfg.Workers.RateLimit)
	assert.False(t, cfg.Pipeline.UseDefaultSkills)
	assert.Equal(t, 64, cfg.Pipeline.ExtractionCacheSize)
	assert.Equal(t, "redis", cfg.BackgroundTasks.Store)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched keys keep their defaults
	assert.Equal(t, 10, cfg.Workers.PoolSize)
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_REDIS_URL", "redis://redis.internal:6380")

	content := `
redis:
  url: "${TEST_REDIS_URL}"
`
	path := writeTempConfig(t, content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "redis://redis.internal:6380", cfg.Redis.URL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TASK_STORE", "redis")
	t.Setenv("PIPELINE_USE_DEFAULT_SKILLS", "false")
	t.Setenv("PIPELINE_HISTORY_TTL", "48h")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "redis", cfg.BackgroundTasks.Store)
	assert.False(t, cfg.Pipeline.UseDefaultSkills)
	assert.Equal(t, 48*time.Hour, cfg.Pipeline.HistoryTTL)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EXPAND_TEST_VAR", "value")

	assert.Equal(t, "value", expandEnvVars("${EXPAND_TEST_VAR}"))
	assert.Equal(t, "prefix-value", expandEnvVars("prefix-$EXPAND_TEST_VAR"))
	// Unknown variables are left untouched
	assert.Equal(t, "${MISSING_VAR_XYZ}", expandEnvVars("${MISSING_VAR_XYZ}"))
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
