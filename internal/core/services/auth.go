package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storefront-labs/storegate/internal/core/domain"
	"github.com/storefront-labs/storegate/internal/core/ports/driven"
	"github.com/storefront-labs/storegate/internal/core/ports/driving"
)

// DefaultTokenTTL is used when no TTL is configured
const DefaultTokenTTL = 24 * time.Hour

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface
type authService struct {
	userStore    driven.UserStore
	sessionStore driven.SessionStore
	authAdapter  driven.AuthAdapter
	tokenTTL     time.Duration
	logger       *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore driven.UserStore,
	sessionStore driven.SessionStore,
	authAdapter driven.AuthAdapter,
	tokenTTL time.Duration,
	logger *slog.Logger,
) driving.AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		authAdapter:  authAdapter,
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Login validates credentials and creates a session. Absent user, wrong
// password, and a corrupted stored digest all surface as
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	// Validate input
	if req.Username == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	// Usernames are stored lowercased; accept whatever casing was typed
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Verify password
	ok, err := s.authAdapter.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, domain.ErrDigestFormat) {
			// Stored digest is corrupted. A server-side data integrity
			// fault: log it and fail closed.
			s.logger.Error("malformed password digest in user store",
				"user_id", user.ID)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	// Account state is disclosed only after the password checks out;
	// before that point a disabled account looks like any bad login.
	if !user.Active {
		return nil, domain.ErrUnauthorized
	}

	// Build claims from the user record's public fields
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	sessionID := uuid.NewString()
	claims := &domain.TokenClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		SessionID: sessionID,
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	// Record the session so the token can be revoked before expiry
	session := &domain.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	// Update last login; never fails the login itself
	_ = s.userStore.UpdateLastLogin(ctx, user.ID)

	return &domain.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user.ToSummary(),
	}, nil
}

// ValidateToken verifies a bearer token and returns the auth context
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil, err
	}

	// Verify the session has not been revoked
	session, err := s.sessionStore.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionRevoked
		}
		return nil, err
	}
	if session.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AuthContext{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
		SessionID: claims.SessionID,
	}, nil
}

// Logout invalidates the session behind a token
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil // Already invalid, nothing to do
	}

	return s.sessionStore.Delete(ctx, claims.SessionID)
}

// LogoutAll invalidates all sessions for a user
func (s *authService) LogoutAll(ctx context.Context, userID string) error {
	return s.sessionStore.DeleteByUser(ctx, userID)
}

// ChangePassword changes the password for an authenticated user
func (s *authService) ChangePassword(ctx context.Context, userID string, req domain.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.userStore.Get(ctx, userID)
	if err != nil {
		return err
	}

	// Verify current password
	ok, err := s.authAdapter.VerifyPassword(req.CurrentPassword, user.PasswordHash)
	if err != nil || !ok {
		return domain.ErrInvalidCredentials
	}

	newHash, err := s.authAdapter.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = newHash
	user.UpdatedAt = time.Now()

	if err := s.userStore.Save(ctx, user); err != nil {
		return err
	}

	// Invalidate all sessions (force re-login)
	return s.sessionStore.DeleteByUser(ctx, userID)
}
