package driven

import "github.com/storefront-labs/storegate/internal/core/domain"

// AuthAdapter handles authentication cryptographic operations.
// This does NOT handle storage - use SessionStore for session persistence.
type AuthAdapter interface {
	// HashPassword produces a salted adaptive digest. Two calls on the
	// same password yield different digests.
	HashPassword(password string) (string, error)

	// VerifyPassword checks a password against a stored digest. A
	// mismatch returns (false, nil); a malformed digest returns
	// (false, domain.ErrDigestFormat).
	VerifyPassword(password, digest string) (bool, error)

	// GenerateToken creates a signed bearer token from claims
	GenerateToken(claims *domain.TokenClaims) (string, error)

	// ParseToken validates a bearer token and extracts claims, failing
	// with domain.ErrTokenExpired or domain.ErrTokenInvalid
	ParseToken(token string) (*domain.TokenClaims, error)
}
