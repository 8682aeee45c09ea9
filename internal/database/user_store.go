package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/pyoushmadan10/chatify/internal/domain"
)

var _ domain.UserRepository = (*UserStore)(nil)

// UserStore implements domain.UserRepository on SurrealDB.
type UserStore struct {
	client Client[domain.User]
}

// NewUserStore creates a user repository backed by the given client.
func NewUserStore(client Client[domain.User]) *UserStore {
	return &UserStore{client: client}
}

// FindByID loads a user by record ID ("user:abc").
func (s *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.client.Select(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, err)
		}
		return nil, err
	}
	return scrub(user), nil
}

// FindUserByEmail returns the user with email, or nil when none exists.
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "SELECT * FROM user WHERE email = $email"
	user, err := s.client.QueryOne(ctx, query, map[string]any{"email": email})
	if err != nil {
		return nil, WrapError(err, "find user by email")
	}
	return scrub(user), nil
}

// UpdateProfilePic replaces the user's profile picture and returns the
// updated record.
func (s *UserStore) UpdateProfilePic(ctx context.Context, id string, profilePic string) (*domain.User, error) {
	user, err := s.client.Merge(ctx, id, map[string]any{"profilePic": profilePic})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, err)
		}
		return nil, err
	}
	return scrub(user), nil
}

// scrub clears the password hash before a user leaves the store.
func scrub(user *domain.User) *domain.User {
	if user != nil {
		user.Password = ""
	}
	return user
}
