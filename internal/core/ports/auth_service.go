package ports

import (
	"context"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// AuthService authenticates callers and issues tokens.
type AuthService interface {
	// Login authenticates by email/password. The two demo identities return
	// their fixed tokens; everyone else is verified against the credential
	// store and receives a signed JWT.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// LoginStudent looks a student up by their 10-digit studentId.
	LoginStudent(ctx context.Context, studentID string) (*domain.User, error)
}

// IdentityResolver maps a bearer token to a stored user record.
type IdentityResolver interface {
	// Resolve returns the user the token identifies, or
	// domain.ErrNotAuthenticated when the token is invalid or the record
	// no longer exists.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
