package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pyoushmadan10/chatify/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := NewRedisCache(RedisConfig{Addr: addr})
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Ping(ctx))

	user := testutils.NewUser("Redis Tester", "redis@example.com")
	user.ProfilePic = "/app/profile/avatars/r/t.png"
	id := user.ID.String()
	t.Cleanup(func() { _ = c.Delete(context.Background(), id) })

	require.NoError(t, c.Set(ctx, user, time.Minute))

	got, err := c.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID.String())
	assert.Equal(t, user.FullName, got.FullName)
	assert.Equal(t, user.ProfilePic, got.ProfilePic)

	require.NoError(t, c.Delete(ctx, id))
	got, err = c.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}
