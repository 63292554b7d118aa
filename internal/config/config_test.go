package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageTypeMemory, cfg.StorageType)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 24*time.Hour, cfg.RollTTL)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROTOCOLS_PORT", "9090")
	t.Setenv("PROTOCOLS_STORAGE_TYPE", "redis")
	t.Setenv("PROTOCOLS_REDIS_URL", "redis://example:6379")
	t.Setenv("PROTOCOLS_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StorageTypeRedis, cfg.StorageType)
	assert.Equal(t, "redis://example:6379", cfg.RedisURL)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("PROTOCOLS_PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadRedisRequiresURL(t *testing.T) {
	t.Setenv("PROTOCOLS_STORAGE_TYPE", "redis")

	_, err := Load()
	assert.ErrorContains(t, err, "PROTOCOLS_REDIS_URL")
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("PROTOCOLS_STORAGE_TYPE", "sqlite")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid PROTOCOLS_STORAGE_TYPE")
}
