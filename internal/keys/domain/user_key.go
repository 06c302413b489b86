// Package domain defines the user keypair vault models and errors.
//
// A user owns at most one active UserKeyRecord. The record stores the X25519 public key
// in clear and the private key sealed with an AEAD under a key derived from the user's
// password. The password and the derived key are never persisted.
package domain

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
)

// UserKeyRecord is the persisted form of a user's keypair.
type UserKeyRecord struct {
	ID                  uuid.UUID
	UserID              string
	PublicKey           []byte
	EncryptedPrivateKey []byte
	Salt                []byte
	Nonce               []byte
	Algorithm           cryptoDomain.Algorithm
	KDFParams           cryptoDomain.KDFParams
	Version             uint
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AdditionalData returns the AEAD associated data binding the sealed private key to
// its owner, version and public key. Moving a ciphertext to another user or record,
// or swapping the public key, makes decryption fail.
func (r *UserKeyRecord) AdditionalData() []byte {
	const label = "legacyvault/user-key"

	buf := make([]byte, 0, len(label)+len(r.UserID)+len(r.PublicKey)+16)
	buf = append(buf, label...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(r.UserID)))
	buf = append(buf, r.UserID...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(r.Version))
	buf = append(buf, r.PublicKey...)
	return buf
}

// KeyPair is a decrypted keypair handed to the caller exactly once.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// Zero clears the private key.
func (k *KeyPair) Zero() {
	if k == nil {
		return
	}
	cryptoDomain.Zero(k.PrivateKey)
}
