// Package auth verifies bearer credentials against an external identity
// provider and yields the caller's verified email address.
package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNoEmailClaim is returned when a token verifies but carries no
	// email identity.
	ErrNoEmailClaim = errors.New("token has no email claim")
)

// TokenVerifier validates a bearer token and returns the verified email.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (email string, err error)
}
