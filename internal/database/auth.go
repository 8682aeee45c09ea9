package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

var _ domain.Authenticator = (*SurrealAuthenticator)(nil)

// SurrealAuthenticator validates record-access tokens issued by SurrealDB and
// loads the token's user through users. Authenticating switches a
// connection's identity, so it owns a connection separate from the root one
// and serializes access to it.
type SurrealAuthenticator struct {
	mu      sync.Mutex
	db      *surrealdb.DB
	users   domain.UserRepository
	timeout time.Duration
}

// NewAuthenticator opens the dedicated authentication connection.
func NewAuthenticator(ctx context.Context, cfg config.Provider, users domain.UserRepository) (*SurrealAuthenticator, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open auth connection: %w", err)
	}
	if err := db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}
	return &SurrealAuthenticator{db: db, users: users, timeout: cfg.GetDBQueryTimeout()}, nil
}

// Authenticate returns the user the token was issued for.
func (a *SurrealAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredentials
	}

	id, err := a.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := a.users.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load authenticated user: %w", err)
	}
	return user, nil
}

// resolve returns the record ID the token was issued for.
func (a *SurrealAuthenticator) resolve(ctx context.Context, token string) (*models.RecordID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := bounded(ctx, queryTimeoutKey, a.timeout)
	defer cancel()

	if err := a.db.Authenticate(ctx, token); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	defer func() { _ = a.db.Invalidate(ctx) }()

	ids, err := Query[models.RecordID](ctx, a.db, "SELECT VALUE id FROM $auth", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	if len(ids) == 0 {
		return nil, domain.ErrInvalidCredentials
	}
	return &ids[0], nil
}

// Close releases the authentication connection.
func (a *SurrealAuthenticator) Close(ctx context.Context) error {
	return a.db.Close(ctx)
}
