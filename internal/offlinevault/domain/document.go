// Package domain defines the offline vault models and errors.
//
// The offline vault is a local encrypted store that mirrors a subset of a user's
// documents on one device. It is opened with a 64-byte device key that never leaves
// the device and is never derived from the user's password.
package domain

import "time"

// VaultKeySize is the length in bytes of a device key.
const VaultKeySize = 64

// Document is a decrypted document held in the vault.
type Document struct {
	ID             string
	FileName       string
	DocumentType   string
	Content        []byte
	UploadedAt     time.Time
	LastAccessedAt time.Time
	FileSize       int64
	Tags           []string
}

// SealedDocument is the at-rest form of a Document. Record holds every field sealed
// with the storage key; the content inside it is sealed again with the content key.
type SealedDocument struct {
	ID       string
	Record   []byte
	Nonce    []byte
	FileSize int64
}

// Stats summarizes the vault without decrypting any content.
type Stats struct {
	DocumentCount int
	TotalSize     int64
}
