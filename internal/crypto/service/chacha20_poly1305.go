package service

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher is ChaCha20-Poly1305 (RFC 8439) with a 12-byte random nonce.
type ChaCha20Poly1305Cipher struct {
	aeadCipher
}

// NewChaCha20Poly1305 creates a ChaCha20-Poly1305 cipher. The key must be exactly 32 bytes.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &ChaCha20Poly1305Cipher{aeadCipher{aead: aead}}, nil
}
