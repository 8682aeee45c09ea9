package profile

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pyoushmadan10/chatify/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_RegistersViews(t *testing.T) {
	mod := New(Dependencies{ViewTTL: time.Hour})
	reg := registry.New(nil)
	require.NoError(t, mod.Register(reg))

	views, ok := registry.Get(reg, ViewsKey)
	require.True(t, ok)
	assert.Same(t, mod.views, views)
	assert.Equal(t, "profile", mod.Name())
}

func TestModule_Shutdown(t *testing.T) {
	t.Run("before boot", func(t *testing.T) {
		mod := New(Dependencies{})
		assert.NoError(t, mod.Shutdown(context.Background()))
	})

	t.Run("stops the sweeper", func(t *testing.T) {
		mod := New(Dependencies{ViewTTL: time.Hour})
		reg := registry.New(nil)
		require.NoError(t, mod.Register(reg))
		require.NoError(t, mod.Boot(context.Background(), echo.New().Group("/app/profile"), reg))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, mod.Shutdown(ctx))

		select {
		case <-mod.done:
		default:
			t.Fatal("sweeper still running after shutdown")
		}
	})
}
