package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 15*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, 24, cfg.Retention.DataRetentionHours)
	assert.Equal(t, 120*time.Second, cfg.LLM.RequestTimeout)
	assert.False(t, cfg.Privacy.UseExternal)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.ConfigFile())
}

func TestInitializeEnvOverrides(t *testing.T) {
	t.Setenv("WORKER_CONCURRENCY", "12")
	t.Setenv("DATA_RETENTION_HOURS", "48")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("OVH_AI_BASE_URL", "https://llm.example.com/v1")
	t.Setenv("OVH_AI_ENDPOINTS_ACCESS_TOKEN", "tok")
	t.Setenv("USE_EXTERNAL_PII", "true")
	t.Setenv("EXTERNAL_PII_URL", "https://pii.example.com")
	t.Setenv("FEATURE_FLAG_PII_ENABLED", "false")
	t.Setenv("FEATURE_FLAG_FACT_CHECK", "true")
	t.Setenv("PORT", "9090")

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Queue.WorkerCount)
	assert.Equal(t, 48, cfg.Retention.DataRetentionHours)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Queue.RedisURL)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLM.BaseURL)
	assert.True(t, cfg.Privacy.UseExternal)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	v, ok := cfg.FlagOverride("pii_enabled")
	assert.True(t, ok)
	assert.False(t, v)
	v, ok = cfg.FlagOverride("fact_check")
	assert.True(t, ok)
	assert.True(t, v)
	_, ok = cfg.FlagOverride("unknown")
	assert.False(t, ok)
}

func TestInitializeYAMLOverlay(t *testing.T) {
	t.Setenv("TEST_LLM_TOKEN", "from-env")
	dir := t.TempDir()
	path := filepath.Join(dir, "befund.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
queue:
  worker_count: 3
  job_timeout: 5m
llm:
  base_url: "https://overlay.example.com"
  access_token: "{{.TEST_LLM_TOKEN}}"
server:
  addr: ":7000"
`), 0o600))
	t.Setenv("BEFUND_CONFIG", path)

	cfg, err := Initialize()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, "https://overlay.example.com", cfg.LLM.BaseURL)
	assert.Equal(t, "from-env", cfg.LLM.AccessToken)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, path, cfg.ConfigFile())

	// Untouched sections keep their defaults.
	assert.Equal(t, 24, cfg.Retention.DataRetentionHours)
}

func TestInitializeEnvWinsOverOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "befund.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  worker_count: 3\n"), 0o600))
	t.Setenv("BEFUND_CONFIG", path)
	t.Setenv("WORKER_CONCURRENCY", "9")

	cfg, err := Initialize()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Queue.WorkerCount)
}

func TestInitializeValidation(t *testing.T) {
	t.Run("external pii without url", func(t *testing.T) {
		t.Setenv("USE_EXTERNAL_PII", "true")
		_, err := Initialize()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("bad overlay yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("queue: ["), 0o600))
		t.Setenv("BEFUND_CONFIG", path)
		_, err := Initialize()
		require.Error(t, err)
	})

	t.Run("missing overlay file", func(t *testing.T) {
		t.Setenv("BEFUND_CONFIG", "/does/not/exist.yaml")
		_, err := Initialize()
		require.Error(t, err)
	})
}
