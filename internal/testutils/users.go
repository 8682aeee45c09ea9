package testutils

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pyoushmadan10/chatify/internal/domain"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// NewTestRecordID creates a new RecordID for testing purposes.
func NewTestRecordID(table string) *surrealmodels.RecordID {
	id := surrealmodels.NewRecordID(table, uuid.NewString())
	return &id
}

// NewUser returns a user with a fresh record ID.
func NewUser(fullName, email string) *domain.User {
	return &domain.User{
		ID:        NewTestRecordID("user"),
		FullName:  fullName,
		Email:     email,
		CreatedAt: "2023-05-01T12:00:00Z",
	}
}

// UserRepo is an in-memory domain.UserRepository.
type UserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User

	// Err, when set, is returned by every call.
	Err error
	// Updates counts UpdateProfilePic calls.
	Updates int
}

var _ domain.UserRepository = (*UserRepo)(nil)

// NewUserRepo seeds a repository with users.
func NewUserRepo(users ...*domain.User) *UserRepo {
	r := &UserRepo{users: make(map[string]domain.User)}
	for _, u := range users {
		r.users[u.ID.String()] = *u
	}
	return r
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) UpdateProfilePic(ctx context.Context, id string, profilePic string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.ProfilePic = profilePic
	r.users[id] = u
	r.Updates++
	return &u, nil
}
