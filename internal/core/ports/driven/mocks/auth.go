package mocks

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/storefront-labs/storegate/internal/core/domain"
)

// MockAuthAdapter is a mock implementation of AuthAdapter for testing.
// Password "hashing" is a reversible prefix so tests can construct stored
// digests directly; tokens are looked up in an in-memory table.
type MockAuthAdapter struct {
	mu     sync.RWMutex
	tokens map[string]*domain.TokenClaims
	seq    int
}

// NewMockAuthAdapter creates a new MockAuthAdapter
func NewMockAuthAdapter() *MockAuthAdapter {
	return &MockAuthAdapter{
		tokens: make(map[string]*domain.TokenClaims),
	}
}

func (m *MockAuthAdapter) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockAuthAdapter) VerifyPassword(password, digest string) (bool, error) {
	if !strings.HasPrefix(digest, "hashed:") {
		return false, domain.ErrDigestFormat
	}
	return strings.TrimPrefix(digest, "hashed:") == password, nil
}

func (m *MockAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	token := fmt.Sprintf("mock-token-%s-%d", claims.UserID, m.seq)
	m.tokens[token] = claims
	return token, nil
}

func (m *MockAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	claims, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	if time.Now().Unix() > claims.ExpiresAt {
		return nil, domain.ErrTokenExpired
	}
	return claims, nil
}

// ExpireToken forces a stored token's expiry into the past (test helper)
func (m *MockAuthAdapter) ExpireToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if claims, ok := m.tokens[token]; ok {
		claims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	}
}
