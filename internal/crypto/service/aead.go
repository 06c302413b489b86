package service

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
)

// aeadCipher adapts a cipher.AEAD to the AEAD interface with random nonces.
type aeadCipher struct {
	aead cipher.AEAD
}

func (a aeadCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

func (a aeadCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	// cipher.AEAD.Open panics on a nonce of the wrong size.
	if len(nonce) != a.aead.NonceSize() {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
