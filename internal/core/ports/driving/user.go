package driving

import (
	"context"

	"github.com/storefront-labs/storegate/internal/core/domain"
)

// SetupRequest creates the initial admin user
type SetupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SetupResponse is returned after successful setup
type SetupResponse struct {
	User    *domain.User `json:"user"`
	Message string       `json:"message"`
}

// CreateUserRequest creates a new user
type CreateUserRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// UserService handles user management
type UserService interface {
	// Setup creates the initial admin user (only works if no users exist)
	Setup(ctx context.Context, req SetupRequest) (*SetupResponse, error)

	// Create creates a new user (admin only)
	Create(ctx context.Context, req CreateUserRequest) (*domain.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*domain.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*domain.User, error)

	// Delete deletes a user and their sessions
	Delete(ctx context.Context, id string) error

	// SetActive enables or disables a user. Disabling revokes all
	// of their sessions.
	SetActive(ctx context.Context, id string, active bool) error
}
