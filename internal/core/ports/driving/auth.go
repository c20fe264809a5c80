package driving

import (
	"context"

	"github.com/storefront-labs/storegate/internal/core/domain"
)

// AuthService handles user authentication
type AuthService interface {
	// Login validates credentials, mints a bearer token and records a
	// session. Absent user and wrong password are indistinguishable to
	// the caller.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// ValidateToken verifies a bearer token and returns the auth context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)

	// Logout invalidates the session behind a token
	Logout(ctx context.Context, token string) error

	// LogoutAll invalidates all sessions for a user
	LogoutAll(ctx context.Context, userID string) error

	// ChangePassword changes the password for an authenticated user and
	// invalidates all of their sessions
	ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error
}
