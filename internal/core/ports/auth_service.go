package ports

import (
	"context"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

// AuthService issues and resolves session tokens.
type AuthService interface {
	// Register creates an account and returns a signed session token plus the
	// public user fields.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies credentials, updates the last-login timestamp, and
	// returns a signed session token plus the public user fields.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Validate resolves an authenticated user id to its identity record.
	Validate(ctx context.Context, userID string) (*domain.User, error)
}
