package app

import (
	"context"
	"testing"
	"time"

	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/filereader"
	"github.com/pyoushmadan10/chatify/internal/rendering"
	"github.com/pyoushmadan10/chatify/internal/storage"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Services that need no network connection can be resolved without SurrealDB.
func TestContainer_OfflineServices(t *testing.T) {
	cfg := &config.Config{StorageBackend: "memory", ViewTTL: time.Minute, UploadRateLimit: 5}
	i := NewContainer(context.Background(), cfg)
	defer Shutdown(context.Background(), i)

	store, err := do.Invoke[storage.Store](i)
	require.NoError(t, err)
	assert.NotNil(t, store)

	bus, err := Bus(i)
	require.NoError(t, err)
	again, err := Bus(i)
	require.NoError(t, err)
	assert.Same(t, bus, again, "services are singletons")

	_, err = do.Invoke[*filereader.Reader](i)
	require.NoError(t, err)
	_, err = do.Invoke[*rendering.UniversalRenderer](i)
	require.NoError(t, err)

	got := do.MustInvoke[config.Provider](i)
	assert.Equal(t, "memory", got.GetStorageBackend())
}
