package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/redis/go-redis/v9"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// RedisConfig holds the connection settings for RedisCache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache stores users as JSON under "profile:<id>".
type RedisCache struct {
	client *redis.Client
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache creates a RedisCache. The connection is established lazily.
func NewRedisCache(cfg RedisConfig) *RedisCache {
	return &RedisCache{client: redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})}
}

// Ping checks the connection.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, id string) (*domain.User, error) {
	val, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key(id), err)
	}

	var entry redisEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		return nil, fmt.Errorf("decode cached profile: %w", err)
	}
	return entry.user(), nil
}

func (r *RedisCache) Set(ctx context.Context, user *domain.User, ttl time.Duration) error {
	if user == nil || user.ID == nil {
		return nil
	}
	val, err := json.Marshal(newRedisEntry(user))
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(user.ID.String()), val, ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, key(id)).Err()
}

// Close closes the underlying client.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// redisEntry flattens the record ID so the JSON form does not depend on how
// the driver type encodes itself.
type redisEntry struct {
	Table      string `json:"table"`
	Key        string `json:"key"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

func newRedisEntry(u *domain.User) redisEntry {
	return redisEntry{
		Table:      u.ID.Table,
		Key:        fmt.Sprint(u.ID.ID),
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt,
	}
}

func (e redisEntry) user() *domain.User {
	id := surrealmodels.NewRecordID(e.Table, e.Key)
	return &domain.User{
		ID:         &id,
		FullName:   e.FullName,
		Email:      e.Email,
		ProfilePic: e.ProfilePic,
		CreatedAt:  e.CreatedAt,
	}
}
