package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/pyoushmadan10/chatify/internal/domain"
)

// UserRepository wraps a domain.UserRepository with a read-through cache on
// FindByID. Updates write the fresh record back to the cache.
type UserRepository struct {
	next  domain.UserRepository
	cache Cache
	ttl   time.Duration
}

var _ domain.UserRepository = (*UserRepository)(nil)

// NewUserRepository decorates next with cache.
func NewUserRepository(next domain.UserRepository, cache Cache, ttl time.Duration) *UserRepository {
	return &UserRepository{next: next, cache: cache, ttl: ttl}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if cached, err := r.cache.Get(ctx, id); err != nil {
		slog.WarnContext(ctx, "profile cache read failed", "user_id", id, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, user)
	return user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.next.FindUserByEmail(ctx, email)
}

func (r *UserRepository) UpdateProfilePic(ctx context.Context, id string, profilePic string) (*domain.User, error) {
	user, err := r.next.UpdateProfilePic(ctx, id, profilePic)
	if err != nil {
		// The stored record may or may not have changed.
		if delErr := r.cache.Delete(ctx, id); delErr != nil {
			slog.WarnContext(ctx, "profile cache eviction failed", "user_id", id, "error", delErr)
		}
		return nil, err
	}
	r.store(ctx, user)
	return user, nil
}

// Evict drops id from the cache.
func (r *UserRepository) Evict(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, id)
}

func (r *UserRepository) store(ctx context.Context, user *domain.User) {
	if err := r.cache.Set(ctx, user, r.ttl); err != nil {
		slog.WarnContext(ctx, "profile cache write failed", "error", err)
	}
}
