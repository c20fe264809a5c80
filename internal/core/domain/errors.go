package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates a failed login. Absent user, wrong
	// password, and a corrupted stored digest all map here so callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired indicates the bearer token's expiry has elapsed
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the bearer token is malformed or carries
	// a bad signature
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSessionRevoked indicates the token is valid but its session has
	// been invalidated (logout, deactivation)
	ErrSessionRevoked = errors.New("session revoked")

	// ErrInsufficientRole indicates an authenticated subject lacks the
	// required role. Surfaced as forbidden, never as unauthenticated.
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrDigestFormat indicates a stored password digest is malformed.
	// A data integrity fault: logged server-side, surfaced to callers
	// as ErrInvalidCredentials.
	ErrDigestFormat = errors.New("malformed password digest")

	// ErrForbidden indicates the action is not permitted
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")
)
