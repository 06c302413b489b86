package service

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
)

// PasswordKeyDeriver implements KeyDeriver with PBKDF2-HMAC-SHA256 and Argon2id.
// It holds no state and is safe for concurrent use.
type PasswordKeyDeriver struct{}

// NewKeyDeriver creates a new PasswordKeyDeriver.
func NewKeyDeriver() *PasswordKeyDeriver {
	return &PasswordKeyDeriver{}
}

// Derive returns a KeySize byte key for password and salt.
func (d *PasswordKeyDeriver) Derive(password, salt []byte, params cryptoDomain.KDFParams) ([]byte, error) {
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: password is required", cryptoDomain.ErrInvalidKDFInput)
	}
	if len(salt) < cryptoDomain.MinSaltSize {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", cryptoDomain.ErrInvalidKDFInput, cryptoDomain.MinSaltSize)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	switch params.Algorithm {
	case cryptoDomain.Argon2id:
		return argon2.IDKey(
			password,
			salt,
			params.Time,
			params.MemoryKiB,
			params.Threads,
			cryptoDomain.KeySize,
		), nil
	default:
		return pbkdf2.Key(password, salt, int(params.Iterations), cryptoDomain.KeySize, sha256.New), nil
	}
}

// GenerateSalt returns n bytes from crypto/rand.
func GenerateSalt(n int) ([]byte, error) {
	if n < cryptoDomain.MinSaltSize {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", cryptoDomain.ErrInvalidKDFInput, cryptoDomain.MinSaltSize)
	}

	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
