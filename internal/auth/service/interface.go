// Package service issues and verifies the bearer tokens that identify users.
package service

import (
	"time"

	authDomain "github.com/allisson/legacyvault/internal/auth/domain"
)

// TokenService signs and verifies HS256 JWTs whose subject is the user id.
type TokenService interface {
	// Issue returns a signed token for userID valid for ttl.
	Issue(userID string, ttl time.Duration) (string, error)

	// Verify checks the signature, issuer and expiry and returns the caller.
	// Every failure is reported as authDomain.ErrInvalidToken.
	Verify(token string) (*authDomain.Principal, error)
}
