// Package service implements the cryptographic primitives: AEAD ciphers, password key
// derivation, X25519 keypair generation and KMS keepers used to wrap device keys.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and a fresh random nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD. Any authentication
	// failure is reported as cryptoDomain.ErrDecryptionFailed.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyDeriver turns a password and salt into a symmetric key.
type KeyDeriver interface {
	// Derive returns a cryptoDomain.KeySize byte key. It is deterministic for the same
	// inputs and never checks whether the password is "right".
	Derive(password, salt []byte, params cryptoDomain.KDFParams) ([]byte, error)
}

// KeyPairGenerator creates asymmetric keypairs.
type KeyPairGenerator interface {
	Generate() (publicKey, privateKey []byte, err error)
}

// Keeper wraps and unwraps small secrets with a key held by a KMS.
// *secrets.Keeper from gocloud.dev satisfies it.
type Keeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers from provider URIs.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (Keeper, error)
}
