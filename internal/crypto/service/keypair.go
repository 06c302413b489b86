package service

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// X25519KeyPairGenerator generates Curve25519 keypairs compatible with NaCl box.
type X25519KeyPairGenerator struct{}

// NewKeyPairGenerator creates a new X25519KeyPairGenerator.
func NewKeyPairGenerator() *X25519KeyPairGenerator {
	return &X25519KeyPairGenerator{}
}

// Generate returns a fresh 32-byte public key and 32-byte private key.
func (g *X25519KeyPairGenerator) Generate() (publicKey, privateKey []byte, err error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	publicKey = append([]byte(nil), pub[:]...)
	privateKey = append([]byte(nil), priv[:]...)
	clear(priv[:])

	return publicKey, privateKey, nil
}
