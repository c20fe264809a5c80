package domain

import (
	"errors"
	"testing"
	"time"
)

func TestAuthContext_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		wantErr  error
	}{
		{"admin passes seller check", RoleAdmin, RoleSeller, nil},
		{"admin passes customer check", RoleAdmin, RoleCustomer, nil},
		{"seller passes seller check", RoleSeller, RoleSeller, nil},
		{"seller fails customer check", RoleSeller, RoleCustomer, ErrInsufficientRole},
		{"customer fails seller check", RoleCustomer, RoleSeller, ErrInsufficientRole},
		{"customer fails admin check", RoleCustomer, RoleAdmin, ErrInsufficientRole},
		{"missing role fails every check", Role(""), RoleCustomer, ErrInsufficientRole},
		{"unknown role fails every check", Role("moderator"), RoleCustomer, ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authCtx := &AuthContext{UserID: "user-1", Role: tt.role}
			err := authCtx.RequireRole(tt.required)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RequireRole(%q) with role %q = %v, want %v", tt.required, tt.role, err, tt.wantErr)
			}
			if got := authCtx.HasRole(tt.required); got != (tt.wantErr == nil) {
				t.Errorf("HasRole(%q) with role %q = %v, want %v", tt.required, tt.role, got, tt.wantErr == nil)
			}
		})
	}
}

func TestAuthContext_RolePredicates(t *testing.T) {
	admin := &AuthContext{Role: RoleAdmin}
	if !admin.IsAdmin() || !admin.IsSeller() || !admin.IsCustomer() {
		t.Error("expected admin to pass all role predicates")
	}

	seller := &AuthContext{Role: RoleSeller}
	if seller.IsAdmin() {
		t.Error("expected seller to fail admin predicate")
	}
	if !seller.IsSeller() {
		t.Error("expected seller to pass seller predicate")
	}
	if seller.IsCustomer() {
		t.Error("expected seller to fail customer predicate")
	}

	customer := &AuthContext{Role: RoleCustomer}
	if customer.IsAdmin() || customer.IsSeller() {
		t.Error("expected customer to fail admin and seller predicates")
	}
	if !customer.IsCustomer() {
		t.Error("expected customer to pass customer predicate")
	}
}

func TestSession_IsExpired(t *testing.T) {
	active := &Session{ExpiresAt: time.Now().Add(time.Hour)}
	if active.IsExpired() {
		t.Error("expected session expiring in an hour to be active")
	}

	expired := &Session{ExpiresAt: time.Now().Add(-time.Minute)}
	if !expired.IsExpired() {
		t.Error("expected session with past expiry to be expired")
	}
}
