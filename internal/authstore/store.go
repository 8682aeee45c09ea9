// Package authstore holds the signed-in user of one browser session and the
// state of any profile update in flight.
package authstore

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pyoushmadan10/chatify/internal/domain"
)

// Updater persists a profile update for a user.
type Updater interface {
	UpdateProfile(ctx context.Context, user *domain.User, update domain.ProfileUpdate) (*domain.User, error)
}

// Store is the session store consumed by the profile screen.
type Store struct {
	mu       sync.RWMutex
	user     *domain.User
	updating int

	updater Updater
	logger  *slog.Logger
}

// New creates a store signed in as user.
func New(user *domain.User, updater Updater, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{user: user, updater: updater, logger: logger}
}

// AuthUser returns the signed-in user. The returned value must not be modified.
func (s *Store) AuthUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsUpdatingProfile reports whether any profile update is still running.
func (s *Store) IsUpdatingProfile() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updating > 0
}

// UpdateProfile sends update to the backend and replaces the signed-in user
// with the stored record on success.
func (s *Store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	s.mu.Lock()
	s.updating++
	user := s.user
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.updating--
		s.mu.Unlock()
	}()

	updated, err := s.updater.UpdateProfile(ctx, user, update)
	if err != nil {
		s.logger.ErrorContext(ctx, "error in update profile", "error", err)
		return err
	}

	s.Refresh(updated)
	return nil
}

// Refresh replaces the signed-in user with a newer copy of the same record.
// Records of other users are ignored.
func (s *Store) Refresh(user *domain.User) {
	if user == nil || user.ID == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil && s.user.ID != nil && s.user.ID.String() != user.ID.String() {
		return
	}
	s.user = user
}

// ApplyProfilePic records a profile picture change announced for userID.
func (s *Store) ApplyProfilePic(userID, profilePic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.ID == nil || s.user.ID.String() != userID {
		return
	}
	if s.user.ProfilePic == profilePic {
		return
	}
	u := *s.user
	u.ProfilePic = profilePic
	s.user = &u
}
