package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storefront-labs/storegate/internal/core/domain"
	"github.com/storefront-labs/storegate/internal/core/ports/driven"
	"github.com/storefront-labs/storegate/internal/core/ports/driving"
)

// Ensure userService implements UserService
var _ driving.UserService = (*userService)(nil)

// userService implements the UserService interface
type userService struct {
	userStore    driven.UserStore
	sessionStore driven.SessionStore
	authAdapter  driven.AuthAdapter
}

// NewUserService creates a new UserService
func NewUserService(
	userStore driven.UserStore,
	sessionStore driven.SessionStore,
	authAdapter driven.AuthAdapter,
) driving.UserService {
	return &userService{
		userStore:    userStore,
		sessionStore: sessionStore,
		authAdapter:  authAdapter,
	}
}

// Setup creates the initial admin user (only works if no users exist)
func (s *userService) Setup(ctx context.Context, req driving.SetupRequest) (*driving.SetupResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) > 0 {
		return nil, domain.ErrForbidden
	}

	user, err := s.Create(ctx, driving.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	return &driving.SetupResponse{
		User:    user,
		Message: "Setup complete. You can now log in.",
	}, nil
}

// Create creates a new user (admin only)
func (s *userService) Create(ctx context.Context, req driving.CreateUserRequest) (*domain.User, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Reject duplicate username or email
	if existing, _ := s.userStore.GetByUsername(ctx, username); existing != nil {
		return nil, domain.ErrAlreadyExists
	}
	if existing, _ := s.userStore.GetByEmail(ctx, email); existing != nil {
		return nil, domain.ErrAlreadyExists
	}

	passwordHash, err := s.authAdapter.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by ID
func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.userStore.Get(ctx, id)
}

// List retrieves all users
func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userStore.List(ctx)
}

// Delete deletes a user and their sessions
func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return err
	}
	return s.sessionStore.DeleteByUser(ctx, id)
}

// SetActive enables or disables a user
func (s *userService) SetActive(ctx context.Context, id string, active bool) error {
	user, err := s.userStore.Get(ctx, id)
	if err != nil {
		return err
	}

	user.Active = active
	user.UpdatedAt = time.Now()

	if err := s.userStore.Save(ctx, user); err != nil {
		return err
	}

	// Disabling an account revokes its sessions immediately
	if !active {
		return s.sessionStore.DeleteByUser(ctx, id)
	}
	return nil
}

func (s *userService) validateCreateRequest(req driving.CreateUserRequest) error {
	if req.Username == "" || req.Email == "" {
		return domain.ErrInvalidInput
	}
	if len(req.Password) < 8 {
		return domain.ErrInvalidInput
	}
	if !strings.Contains(req.Email, "@") {
		return domain.ErrInvalidInput
	}
	if !req.Role.IsValid() {
		return domain.ErrInvalidInput
	}
	return nil
}
