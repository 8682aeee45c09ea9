package cache

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/pyoushmadan10/chatify/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	user := testutils.NewUser("Ada Lovelace", "ada@example.com")
	id := user.ID.String()

	got, err := c.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache misses")

	require.NoError(t, c.Set(ctx, user, time.Minute))
	got, err = c.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada Lovelace", got.FullName)

	got.FullName = "mutated"
	again, _ := c.Get(ctx, id)
	assert.Equal(t, "Ada Lovelace", again.FullName, "cache hands out copies")

	require.NoError(t, c.Delete(ctx, id))
	got, _ = c.Get(ctx, id)
	assert.Nil(t, got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	user := testutils.NewUser("Grace Hopper", "grace@example.com")
	require.NoError(t, c.Set(ctx, user, time.Minute))

	now = now.Add(2 * time.Minute)
	got, err := c.Get(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Nil(t, got, "expired entries miss")
}

func TestUserRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	user := testutils.NewUser("Alan Turing", "alan@example.com")
	backing := testutils.NewUserRepo(user)
	c := NewMemoryCache()
	repo := NewUserRepository(backing, c, time.Minute)

	first, err := repo.FindByID(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", first.FullName)

	// Served from cache even when the backing store fails.
	backing.Err = errors.New("database down")
	second, err := repo.FindByID(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", second.FullName)
}

func TestUserRepository_UpdateWritesThrough(t *testing.T) {
	ctx := context.Background()
	user := testutils.NewUser("Alan Turing", "alan@example.com")
	backing := testutils.NewUserRepo(user)
	c := NewMemoryCache()
	repo := NewUserRepository(backing, c, time.Minute)

	_, err := repo.FindByID(ctx, user.ID.String())
	require.NoError(t, err)

	_, err = repo.UpdateProfilePic(ctx, user.ID.String(), "/app/profile/avatars/a/b.png")
	require.NoError(t, err)

	cached, err := c.Get(ctx, user.ID.String())
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "/app/profile/avatars/a/b.png", cached.ProfilePic)
}

func TestUserRepository_FailedUpdateEvicts(t *testing.T) {
	ctx := context.Background()
	user := testutils.NewUser("Alan Turing", "alan@example.com")
	backing := testutils.NewUserRepo(user)
	c := NewMemoryCache()
	repo := NewUserRepository(backing, c, time.Minute)

	_, err := repo.FindByID(ctx, user.ID.String())
	require.NoError(t, err)

	backing.Err = errors.New("write failed")
	_, err = repo.UpdateProfilePic(ctx, user.ID.String(), "x")
	require.Error(t, err)

	cached, _ := c.Get(ctx, user.ID.String())
	assert.Nil(t, cached)
}

// brokenDelete is a cache whose evictions fail.
type brokenDelete struct{ *MemoryCache }

func (brokenDelete) Delete(context.Context, string) error { return errors.New("redis unavailable") }

func TestUserRepository_FailedEvictionIsLogged(t *testing.T) {
	var logs bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(original)

	ctx := context.Background()
	user := testutils.NewUser("Alan Turing", "alan@example.com")
	backing := testutils.NewUserRepo(user)
	repo := NewUserRepository(backing, brokenDelete{NewMemoryCache()}, time.Minute)

	backing.Err = errors.New("write failed")
	_, err := repo.UpdateProfilePic(ctx, user.ID.String(), "x")
	require.ErrorIs(t, err, backing.Err)

	assert.Contains(t, logs.String(), "profile cache eviction failed")
	assert.Contains(t, logs.String(), "redis unavailable")
}
