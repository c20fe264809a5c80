package domain

import "time"

// Role defines user permission level
type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, covers seller and customer checks
	RoleSeller   Role = "seller"   // Manage own listings and orders
	RoleCustomer Role = "customer" // Browse and purchase
)

// IsValid reports whether the role belongs to the closed role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleCustomer:
		return true
	}
	return false
}

// Satisfies reports whether a subject holding role r passes a check for
// the required role. Admin satisfies every known role; seller and customer
// are disjoint peers that satisfy only themselves. Unknown roles on either
// side satisfy nothing, so a missing or mistyped role fails closed.
func (r Role) Satisfies(required Role) bool {
	if !required.IsValid() {
		return false
	}
	if r == RoleAdmin {
		return true
	}
	return r == required
}

// User represents a registered account
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// UserSummary provides a safe view of user data (no password hash)
type UserSummary struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ToSummary converts a User to UserSummary
func (u *User) ToSummary() *UserSummary {
	return &UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
	}
}

// IsAdmin checks if the user has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
