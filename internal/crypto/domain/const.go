// Package domain defines the cryptographic vocabulary shared by the key vault and the
// offline vault: AEAD algorithms, password KDF parameters and the related errors.
package domain

// Algorithm represents the AEAD cipher used to seal data.
//
// Both algorithms use a 256-bit key, a 96-bit nonce and a 128-bit tag, so a record
// sealed with either one has the same shape.
type Algorithm string

const (
	// AESGCM is AES-256-GCM. Preferred on CPUs with AES-NI.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 is ChaCha20-Poly1305. Preferred on platforms without AES hardware support.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the length in bytes of every symmetric key handled by the application,
// including the output of the password KDF.
const KeySize = 32

// ParseAlgorithm converts a configuration value into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20:
		return Algorithm(s), nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
