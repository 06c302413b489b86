package domain

import (
	"github.com/allisson/legacyvault/internal/errors"
)

// Authentication errors.
var (
	// ErrMissingToken indicates the request carried no usable bearer token.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "missing bearer token")

	// ErrInvalidToken indicates a token with a bad signature, issuer, expiry or subject.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrInvalidTokenConfig indicates an empty signing secret or issuer.
	ErrInvalidTokenConfig = errors.Wrap(errors.ErrInvalidInput, "token secret and issuer are required")
)
