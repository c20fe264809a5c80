package domain

import "time"

// TokenClaims represents the bearer token payload. Immutable once minted;
// the embedded role reflects the user record at issuance time and goes
// stale if the role changes before re-authentication.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	SessionID string `json:"session_id"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AuthContext contains authenticated user info derived from verified
// claims. Request-scoped, never persisted.
type AuthContext struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	SessionID string `json:"session_id"`
}

// HasRole reports whether the subject passes a check for the required
// role, honouring the admin-covers-all hierarchy.
func (a *AuthContext) HasRole(required Role) bool {
	return a.Role.Satisfies(required)
}

// RequireRole fails with ErrInsufficientRole when the subject does not
// satisfy the required role.
func (a *AuthContext) RequireRole(required Role) error {
	if !a.Role.Satisfies(required) {
		return ErrInsufficientRole
	}
	return nil
}

// IsAdmin checks if the authenticated user is an admin
func (a *AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsSeller checks if the authenticated user passes a seller check
func (a *AuthContext) IsSeller() bool {
	return a.Role.Satisfies(RoleSeller)
}

// IsCustomer checks if the authenticated user passes a customer check
func (a *AuthContext) IsCustomer() bool {
	return a.Role.Satisfies(RoleCustomer)
}

// Session represents an authenticated user session. Deleting it revokes
// the matching token before its natural expiry.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful authentication
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *UserSummary `json:"user"`
}

// ChangePasswordRequest represents a password change by authenticated user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
