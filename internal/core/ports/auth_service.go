package ports

import (
	"context"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

// AuthService handles registration, login, and session token issuance.
type AuthService interface {
	// Register creates a student account and returns the user together with
	// a signed session token (the caller is logged in immediately).
	Register(ctx context.Context, name, username, password string) (*domain.User, string, error)

	// Login verifies credentials and returns the user and a signed token.
	// Any failure resolves to domain.ErrInvalidCredentials so the response
	// never reveals whether the username existed.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}
