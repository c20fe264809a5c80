package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storefront-labs/storegate/internal/core/domain"
	"github.com/storefront-labs/storegate/internal/core/ports/driven/mocks"
	"github.com/storefront-labs/storegate/internal/core/services"
)

const testCookieName = "storegate_token"

func newTestMiddleware(t *testing.T) (*AuthMiddleware, *mocks.MockUserStore, func(username, password string) string) {
	t.Helper()
	userStore := mocks.NewMockUserStore()
	sessionStore := mocks.NewMockSessionStore()
	authAdapter := mocks.NewMockAuthAdapter()
	authService := services.NewAuthService(userStore, sessionStore, authAdapter, time.Hour, nil)

	login := func(username, password string) string {
		resp, err := authService.Login(context.Background(), domain.LoginRequest{
			Username: username, Password: password,
		})
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		return resp.AccessToken
	}

	return NewAuthMiddleware(authService, testCookieName), userStore, login
}

func seedUser(t *testing.T, store *mocks.MockUserStore, username, password string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           "user-" + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed:" + password,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := store.Save(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	mw, userStore, login := newTestMiddleware(t)
	seedUser(t, userStore, "alice", "secret123", domain.RoleCustomer)
	token := login("alice", "secret123")

	handler := mw.Authenticate(okHandler())

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", token) // no Bearer prefix
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 when header token is invalid, got %d", rec.Code)
		}
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw, userStore, login := newTestMiddleware(t)
	seedUser(t, userStore, "root", "secret123", domain.RoleAdmin)
	seedUser(t, userStore, "sally", "secret123", domain.RoleSeller)
	seedUser(t, userStore, "carl", "secret123", domain.RoleCustomer)

	tokens := map[string]string{
		"root":  login("root", "secret123"),
		"sally": login("sally", "secret123"),
		"carl":  login("carl", "secret123"),
	}

	tests := []struct {
		name     string
		username string
		required domain.Role
		want     int
	}{
		{"admin passes admin check", "root", domain.RoleAdmin, http.StatusOK},
		{"admin passes seller check", "root", domain.RoleSeller, http.StatusOK},
		{"admin passes customer check", "root", domain.RoleCustomer, http.StatusOK},
		{"seller passes seller check", "sally", domain.RoleSeller, http.StatusOK},
		{"seller forbidden from customer endpoint", "sally", domain.RoleCustomer, http.StatusForbidden},
		{"seller forbidden from admin endpoint", "sally", domain.RoleAdmin, http.StatusForbidden},
		{"customer passes customer check", "carl", domain.RoleCustomer, http.StatusOK},
		{"customer forbidden from seller endpoint", "carl", domain.RoleSeller, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mw.Authenticate(mw.RequireRole(tt.required)(okHandler()))
			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tokens[tt.username])
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}

	// Unauthenticated requests to a role-gated endpoint get 401, not 403
	t.Run("missing token yields 401 not 403", func(t *testing.T) {
		handler := mw.Authenticate(mw.RequireRole(domain.RoleSeller)(okHandler()))
		req := httptest.NewRequest("GET", "/protected", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"valid", "Bearer abc123", "abc123"},
		{"case insensitive scheme", "bearer abc123", "abc123"},
		{"missing scheme", "abc123", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"extra whitespace", "Bearer   abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if got := extractBearerToken(req); got != tt.want {
				t.Errorf("extractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := NewCORSMiddleware([]string{"https://app.example.com"}).Handler(okHandler())

	t.Run("allowed origin gets preflight response", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/v1/auth/login", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204 preflight, got %d", rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("expected allow-origin header, got %q", got)
		}
	})

	t.Run("disallowed origin falls through without CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/v1/auth/login", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusNoContent {
			t.Error("expected disallowed preflight to fall through to routing")
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no allow-origin header, got %q", got)
		}
	})

	t.Run("no origin header falls through", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/v1/auth/login", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusNoContent {
			t.Error("expected same-origin OPTIONS to fall through to routing")
		}
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := NewRecoveryMiddleware().Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", rec.Code)
	}
}
