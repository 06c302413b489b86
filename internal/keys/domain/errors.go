package domain

import (
	"strings"

	"github.com/allisson/legacyvault/internal/errors"
)

// AuthenticationFailedMessage is the only message returned when a private key cannot be
// recovered. Wrong password and corrupted record are indistinguishable on purpose.
const AuthenticationFailedMessage = "failed to retrieve keys, check your password"

var (
	// ErrKeysNotFound indicates the user has no active keypair.
	ErrKeysNotFound = errors.Wrap(errors.ErrNotFound, "encryption keys not found")

	// ErrKeysAlreadyExist indicates the user already has an active keypair.
	ErrKeysAlreadyExist = errors.Wrap(
		errors.ErrConflict,
		"encryption keys already exist for this user, use key rotation instead",
	)

	// ErrKeyAuthenticationFailed indicates the private key could not be decrypted.
	ErrKeyAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, AuthenticationFailedMessage)

	// ErrWeakPassword indicates the password does not satisfy the strength policy.
	ErrWeakPassword = errors.Wrap(errors.ErrInvalidInput, "password does not meet security requirements")

	// ErrUserIDRequired indicates a blank user id.
	ErrUserIDRequired = errors.Wrap(errors.ErrInvalidInput, "user id is required")
)

// WeakPasswordError carries every violated password rule.
type WeakPasswordError struct {
	Violations []string
}

// NewWeakPasswordError creates a WeakPasswordError for the given violations.
func NewWeakPasswordError(violations []string) *WeakPasswordError {
	return &WeakPasswordError{Violations: violations}
}

func (e *WeakPasswordError) Error() string {
	return "password does not meet security requirements: " + strings.Join(e.Violations, "; ")
}

// Unwrap lets errors.Is match ErrWeakPassword and errors.ErrInvalidInput.
func (e *WeakPasswordError) Unwrap() error {
	return ErrWeakPassword
}

// Details returns the violations for the HTTP error body.
func (e *WeakPasswordError) Details() []string {
	return e.Violations
}
