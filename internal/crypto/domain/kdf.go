package domain

import "fmt"

// KDFAlgorithm identifies the password based key derivation function.
type KDFAlgorithm string

const (
	// PBKDF2SHA256 is PBKDF2 with HMAC-SHA256.
	PBKDF2SHA256 KDFAlgorithm = "pbkdf2-sha256"
	// Argon2id is the memory hard Argon2id function (RFC 9106).
	Argon2id KDFAlgorithm = "argon2id"
)

const (
	// MinSaltSize is the smallest salt accepted by the KDF.
	MinSaltSize = 16
	// DefaultSaltSize is the salt length generated for new key records.
	DefaultSaltSize = 32

	// MinPBKDF2Iterations is the lowest iteration count accepted for PBKDF2.
	MinPBKDF2Iterations = 100_000
	// DefaultPBKDF2Iterations follows the OWASP recommendation for PBKDF2-HMAC-SHA256.
	DefaultPBKDF2Iterations = 210_000

	// MinArgon2MemoryKiB is the lowest Argon2id memory cost accepted.
	MinArgon2MemoryKiB = 19 * 1024
)

// KDFParams describes how a symmetric key was derived from a password. It is
// persisted next to the salt so that a record can always be re-derived even after
// the configured defaults change.
type KDFParams struct {
	Algorithm  KDFAlgorithm `json:"algorithm"`
	Iterations uint32       `json:"iterations,omitempty"`
	Time       uint32       `json:"time,omitempty"`
	MemoryKiB  uint32       `json:"memory_kib,omitempty"`
	Threads    uint8        `json:"threads,omitempty"`
}

// DefaultPBKDF2Params returns PBKDF2-SHA256 with the default iteration count.
func DefaultPBKDF2Params() KDFParams {
	return KDFParams{Algorithm: PBKDF2SHA256, Iterations: DefaultPBKDF2Iterations}
}

// DefaultArgon2idParams returns Argon2id with t=3, m=64 MiB, p=4.
func DefaultArgon2idParams() KDFParams {
	return KDFParams{Algorithm: Argon2id, Time: 3, MemoryKiB: 64 * 1024, Threads: 4}
}

// Validate checks that the parameters name a supported KDF with an acceptable work factor.
func (p KDFParams) Validate() error {
	switch p.Algorithm {
	case PBKDF2SHA256:
		if p.Iterations < MinPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 iterations must be at least %d", ErrInvalidKDFParams, MinPBKDF2Iterations)
		}
	case Argon2id:
		if p.Time < 1 || p.Threads < 1 {
			return fmt.Errorf("%w: argon2id time and threads must be at least 1", ErrInvalidKDFParams)
		}
		if p.MemoryKiB < MinArgon2MemoryKiB {
			return fmt.Errorf("%w: argon2id memory must be at least %d KiB", ErrInvalidKDFParams, MinArgon2MemoryKiB)
		}
	default:
		return ErrUnsupportedKDF
	}
	return nil
}
