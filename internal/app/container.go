// Package app wires the application's services into a dependency container.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pyoushmadan10/chatify/internal/cache"
	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/database"
	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/pyoushmadan10/chatify/internal/filereader"
	"github.com/pyoushmadan10/chatify/internal/profile"
	"github.com/pyoushmadan10/chatify/internal/pubsub"
	"github.com/pyoushmadan10/chatify/internal/rendering"
	"github.com/pyoushmadan10/chatify/internal/storage"
	"github.com/samber/do/v2"
	"github.com/surrealdb/surrealdb.go"
)

// closer adapts a close function to do's shutdown hook.
type closer struct {
	name string
	fn   func(ctx context.Context) error
}

func (c *closer) Shutdown(ctx context.Context) error {
	slog.Debug("closing", "service", c.name)
	return c.fn(ctx)
}

// Connections are registered as closers so the container shuts them down.
type (
	dbHandle struct {
		closer
		DB *surrealdb.DB
	}
	authHandle struct {
		closer
		Auth *database.SurrealAuthenticator
	}
	busHandle struct {
		closer
		Bus *pubsub.WatermillBridge
	}
	cacheHandle struct {
		closer
		Cache cache.Cache
	}
)

// NewContainer registers every core service. Services are built lazily on
// first use; ctx bounds the connection attempts.
func NewContainer(ctx context.Context, cfg config.Provider) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)

	do.Provide(i, func(i do.Injector) (*dbHandle, error) {
		db, err := database.NewDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &dbHandle{closer: closer{name: "surrealdb", fn: db.Close}, DB: db}, nil
	})

	do.Provide(i, func(i do.Injector) (*cacheHandle, error) {
		if cfg.GetRedisAddr() == "" {
			slog.Info("REDIS_ADDR not set, using in-memory profile cache")
			return &cacheHandle{closer: closer{name: "cache", fn: noopClose}, Cache: cache.NewMemoryCache()}, nil
		}
		rc := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.GetRedisPassword(),
			DB:       cfg.GetRedisDB(),
		})
		if err := rc.Ping(ctx); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.GetRedisAddr(), err)
		}
		return &cacheHandle{
			closer: closer{name: "redis", fn: func(context.Context) error { return rc.Close() }},
			Cache:  rc,
		}, nil
	})

	do.Provide(i, func(i do.Injector) (domain.UserRepository, error) {
		db := do.MustInvoke[*dbHandle](i).DB
		client, err := database.NewClient[domain.User](db, cfg)
		if err != nil {
			return nil, err
		}
		c := do.MustInvoke[*cacheHandle](i).Cache
		return cache.NewUserRepository(database.NewUserStore(client), c, cfg.GetCacheTTL()), nil
	})

	do.Provide(i, func(i do.Injector) (*authHandle, error) {
		users := do.MustInvoke[domain.UserRepository](i)
		auth, err := database.NewAuthenticator(ctx, cfg, users)
		if err != nil {
			return nil, err
		}
		return &authHandle{closer: closer{name: "auth", fn: auth.Close}, Auth: auth}, nil
	})

	do.Provide(i, func(i do.Injector) (storage.Store, error) {
		return storage.New(cfg.GetStorageBackend(), cfg.GetStorageDir())
	})

	do.Provide(i, func(i do.Injector) (*busHandle, error) {
		bus := pubsub.NewWatermillBridge(slog.Default())
		return &busHandle{closer: closer{name: "pubsub", fn: func(context.Context) error { return bus.Close() }}, Bus: bus}, nil
	})

	do.Provide(i, func(i do.Injector) (*profile.Service, error) {
		return profile.NewService(
			do.MustInvoke[domain.UserRepository](i),
			do.MustInvoke[storage.Store](i),
			do.MustInvoke[*busHandle](i).Bus,
			cfg.GetAvatarMaxBytes(),
			slog.Default(),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*filereader.Reader, error) {
		return filereader.New(slog.Default()), nil
	})

	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	return i
}

func noopClose(context.Context) error { return nil }

// Users returns the (cached) user repository.
func Users(i do.Injector) (domain.UserRepository, error) {
	return do.Invoke[domain.UserRepository](i)
}

// Authenticator returns the session token authenticator.
func Authenticator(i do.Injector) (domain.Authenticator, error) {
	h, err := do.Invoke[*authHandle](i)
	if err != nil {
		return nil, err
	}
	return h.Auth, nil
}

// Bus returns the event bus.
func Bus(i do.Injector) (*pubsub.WatermillBridge, error) {
	h, err := do.Invoke[*busHandle](i)
	if err != nil {
		return nil, err
	}
	return h.Bus, nil
}

// ProfileService returns the profile update service.
func ProfileService(i do.Injector) (*profile.Service, error) {
	return do.Invoke[*profile.Service](i)
}

// Shutdown closes every service the container built.
func Shutdown(ctx context.Context, root *do.RootScope) {
	report := root.ShutdownWithContext(ctx)
	slog.Debug("container shut down", "report", report)
}
