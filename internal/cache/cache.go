// Package cache keeps recently read user profiles close to the request path.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/pyoushmadan10/chatify/internal/domain"
)

// Cache stores users by record ID. Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

func key(id string) string {
	return "profile:" + id
}

// MemoryCache is an in-process Cache used when no Redis address is configured.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	user    domain.User
	expires time.Time
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(ctx context.Context, id string) (*domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key(id)]
	if !ok {
		return nil, nil
	}
	if !e.expires.IsZero() && c.now().After(e.expires) {
		delete(c.entries, key(id))
		return nil, nil
	}
	u := e.user
	return &u, nil
}

func (c *MemoryCache) Set(ctx context.Context, user *domain.User, ttl time.Duration) error {
	if user == nil || user.ID == nil {
		return nil
	}
	var expires time.Time
	if ttl > 0 {
		expires = c.now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(user.ID.String())] = memoryEntry{user: *user, expires: expires}
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key(id))
	return nil
}
