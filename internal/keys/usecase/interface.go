package usecase

import (
	"context"

	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
)

// KeyRepository persists user key records. Implementations must be transaction aware
// through database.GetTx and must report a second active record for the same user
// as keysDomain.ErrKeysAlreadyExist.
type KeyRepository interface {
	Create(ctx context.Context, record *keysDomain.UserKeyRecord) error
	GetActiveByUserID(ctx context.Context, userID string) (*keysDomain.UserKeyRecord, error)
	Deactivate(ctx context.Context, record *keysDomain.UserKeyRecord) error
}

// KeyUseCase is the keypair vault.
type KeyUseCase interface {
	// Generate creates the user's first keypair and returns the stored record.
	Generate(ctx context.Context, userID, password string) (*keysDomain.UserKeyRecord, error)

	// GetPublicKey returns the active record. Its EncryptedPrivateKey must not be exposed.
	GetPublicKey(ctx context.Context, userID string) (*keysDomain.UserKeyRecord, error)

	// RetrievePrivateKey decrypts the active private key with password.
	//
	// Security Note: callers MUST call KeyPair.Zero once the response is written.
	RetrievePrivateKey(ctx context.Context, userID, password string) (*keysDomain.KeyPair, error)

	// Rotate replaces the active keypair with a fresh one sealed under newPassword.
	Rotate(ctx context.Context, userID, currentPassword, newPassword string) (*keysDomain.UserKeyRecord, error)
}
