package domain

import (
	"github.com/allisson/legacyvault/internal/errors"
)

// Cryptographic errors. They wrap the sentinels from internal/errors so callers can
// classify them without importing this package.
var (
	// ErrUnsupportedAlgorithm indicates the requested AEAD algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates a symmetric key is not KeySize bytes long.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates authenticated decryption failed. The cause (wrong key,
	// tampered ciphertext, wrong nonce or AAD) is intentionally not distinguished.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrInvalidKDFInput indicates a missing password or a salt shorter than MinSaltSize.
	ErrInvalidKDFInput = errors.Wrap(errors.ErrInvalidInput, "invalid key derivation input")

	// ErrUnsupportedKDF indicates an unknown KDF algorithm.
	ErrUnsupportedKDF = errors.Wrap(errors.ErrInvalidInput, "unsupported key derivation function")

	// ErrInvalidKDFParams indicates a KDF work factor below the accepted minimum.
	ErrInvalidKDFParams = errors.Wrap(errors.ErrInvalidInput, "invalid key derivation parameters")
)
