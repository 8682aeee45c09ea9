package domain

import (
	"context"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// User represents the core user model in the application domain.
// ProfilePic holds either a URL served by the avatar routes or a data-URI.
// CreatedAt is kept as the RFC3339 string the database hands back.
type User struct {
	ID         *surrealmodels.RecordID `json:"id,omitempty"`
	FullName   string                  `json:"fullName"`
	Email      string                  `json:"email"`
	Password   string                  `json:"password,omitempty"`
	ProfilePic string                  `json:"profilePic,omitempty"`
	CreatedAt  string                  `json:"createdAt,omitempty"`
}

// UserRepository defines the contract for user data storage operations.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfilePic(ctx context.Context, id string, profilePic string) (*User, error)
}

// Authenticator resolves a session token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*User, error)
}
