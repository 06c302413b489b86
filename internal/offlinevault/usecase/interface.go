// Package usecase implements the offline vault: a local store opened with a device key
// in which every document is sealed twice, once for the file and once for its content.
package usecase

import (
	"context"

	vaultDomain "github.com/allisson/legacyvault/internal/offlinevault/domain"
)

// DocumentRepository persists sealed vault rows. Implementations must be transaction
// aware through database.GetTx.
type DocumentRepository interface {
	EnsureSchema(ctx context.Context) error
	Upsert(ctx context.Context, doc *vaultDomain.SealedDocument) error
	Get(ctx context.Context, id string) (*vaultDomain.SealedDocument, error)
	List(ctx context.Context) ([]*vaultDomain.SealedDocument, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
	Stats(ctx context.Context) (vaultDomain.Stats, error)
	GetMeta(ctx context.Context, name string) (value, nonce []byte, ok bool, err error)
	PutMeta(ctx context.Context, name string, value, nonce []byte) error
}

// Vault is the offline document store. Every operation other than Open and Close
// returns vaultDomain.ErrVaultNotOpen while the vault is closed.
type Vault interface {
	// Open opens or creates the store with a 64-byte device key. Opening an open vault
	// with the same key is a no-op.
	Open(ctx context.Context, key []byte) error
	AddDocument(ctx context.Context, doc *vaultDomain.Document) error
	// GetDocuments returns every document and marks each one as accessed.
	GetDocuments(ctx context.Context) ([]*vaultDomain.Document, error)
	GetDocument(ctx context.Context, id string) (*vaultDomain.Document, error)
	RemoveDocument(ctx context.Context, id string) (bool, error)
	ClearAll(ctx context.Context) error
	GetStats(ctx context.Context) (vaultDomain.Stats, error)
	IsOpen() bool
	Close() error
}

// DeviceKeyStore holds the device key outside the vault file.
type DeviceKeyStore interface {
	// LoadOrCreate returns the device key, creating it on first use.
	LoadOrCreate(ctx context.Context) ([]byte, error)
	Delete(ctx context.Context) error
}
