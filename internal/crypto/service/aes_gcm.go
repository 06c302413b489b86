package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
)

// AESGCMCipher is AES-256-GCM with a 12-byte random nonce per Encrypt call.
type AESGCMCipher struct {
	aeadCipher
}

// NewAESGCM creates an AES-256-GCM cipher. The key must be exactly 32 bytes.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aeadCipher{aead: aead}}, nil
}
