package domain

import (
	"github.com/allisson/legacyvault/internal/errors"
)

var (
	// ErrVaultNotOpen indicates an operation on a closed vault.
	ErrVaultNotOpen = errors.Wrap(errors.ErrConflict, "vault is not open")

	// ErrVaultAlreadyOpen indicates Open was called with a different key while open.
	ErrVaultAlreadyOpen = errors.Wrap(errors.ErrConflict, "vault is already open with another key")

	// ErrVaultOpen indicates the vault file could not be opened or the key was rejected.
	ErrVaultOpen = errors.Wrap(errors.ErrStorage, "failed to open vault")

	// ErrInvalidVaultKey indicates a device key that is not VaultKeySize bytes.
	ErrInvalidVaultKey = errors.Wrap(errors.ErrInvalidInput, "vault key must be 64 bytes")

	// ErrDocumentNotFound indicates the document id is not in the vault.
	ErrDocumentNotFound = errors.Wrap(errors.ErrNotFound, "document not found")

	// ErrDocumentCorrupted indicates a stored document failed authentication.
	ErrDocumentCorrupted = errors.Wrap(errors.ErrStorage, "document failed integrity check")

	// ErrDeviceKeyUnavailable indicates the device key could not be loaded or unwrapped.
	ErrDeviceKeyUnavailable = errors.Wrap(errors.ErrStorage, "device key unavailable")
)
