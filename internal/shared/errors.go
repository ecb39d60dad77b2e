// Package shared defines sentinel errors used across client and server
// layers of Beauty Ease. Callers should use errors.Is to match these values.
package shared

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("invalid email or password")

	// Local validation; never reaches the remote store.
	ErrValidation = errors.New("validation error")

	// Registration errors.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// Auth token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Capture errors. Surfaced to the user as an actionable message with
	// the upload path as fallback.
	ErrDeviceUnavailable = errors.New("unable to access camera, check permissions or upload an image instead")
)
