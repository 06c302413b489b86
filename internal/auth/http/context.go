// Package http provides the bearer token authentication and per-user rate limiting
// middleware.
package http

import (
	"context"

	authDomain "github.com/allisson/legacyvault/internal/auth/domain"
)

// principalKey is a context key type for storing the authenticated caller.
type principalKey struct{}

// WithPrincipal stores the authenticated caller in the context.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated caller stored by AuthenticationMiddleware.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok && principal != nil
}
