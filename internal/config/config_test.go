package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "STORAGE_BACKEND", "AVATAR_MAX_BYTES", "REDIS_ADDR", "CACHE_TTL", "DB_QUERY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "disk", cfg.GetStorageBackend())
	assert.Equal(t, int64(5<<20), cfg.GetAvatarMaxBytes())
	assert.Empty(t, cfg.GetRedisAddr())
	assert.Equal(t, 10*time.Minute, cfg.GetCacheTTL())
	assert.Equal(t, 5*time.Second, cfg.GetDBQueryTimeout())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SURREAL_URL", "ws://localhost:8000/rpc")
	t.Setenv("SURREAL_NS", "chatify")
	t.Setenv("SURREAL_DB", "app")
	t.Setenv("AVATAR_MAX_BYTES", "1024")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg := Load()

	assert.Equal(t, "ws://localhost:8000/rpc", cfg.GetDBURL())
	assert.Equal(t, "chatify", cfg.GetDBNs())
	assert.Equal(t, "app", cfg.GetDBDb())
	assert.Equal(t, int64(1024), cfg.GetAvatarMaxBytes())
	assert.Equal(t, 30*time.Second, cfg.GetCacheTTL())
	assert.Equal(t, 3, cfg.GetRedisDB())
	assert.Equal(t, "memory", cfg.GetStorageBackend())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("AVATAR_MAX_BYTES", "lots")

	cfg := Load()

	assert.Equal(t, 10*time.Minute, cfg.GetCacheTTL())
	assert.Equal(t, int64(5<<20), cfg.GetAvatarMaxBytes())
}
