// Package keystore keeps the offline vault device key on disk, wrapped by a KMS keeper.
package keystore

import (
	"context"
	"crypto/rand"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	cryptoService "github.com/allisson/legacyvault/internal/crypto/service"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	vaultDomain "github.com/allisson/legacyvault/internal/offlinevault/domain"
)

// FileKeyStore implements usecase.DeviceKeyStore. The file holds only the keeper
// ciphertext and is created with mode 0600.
type FileKeyStore struct {
	path   string
	keeper cryptoService.Keeper
}

// NewFileKeyStore creates a key store at path.
func NewFileKeyStore(path string, keeper cryptoService.Keeper) *FileKeyStore {
	return &FileKeyStore{path: path, keeper: keeper}
}

// LoadOrCreate unwraps the stored key, or generates, wraps and stores a new one.
func (s *FileKeyStore) LoadOrCreate(ctx context.Context) ([]byte, error) {
	wrapped, err := os.ReadFile(s.path)
	if err == nil {
		return s.unwrap(ctx, wrapped)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrapf(vaultDomain.ErrDeviceKeyUnavailable, "failed to read key file: %v", err)
	}

	return s.create(ctx)
}

func (s *FileKeyStore) unwrap(ctx context.Context, wrapped []byte) ([]byte, error) {
	key, err := s.keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, apperrors.Wrapf(vaultDomain.ErrDeviceKeyUnavailable, "failed to unwrap key: %v", err)
	}
	if len(key) != vaultDomain.VaultKeySize {
		cryptoDomain.Zero(key)
		return nil, apperrors.Wrap(vaultDomain.ErrDeviceKeyUnavailable, "stored key has the wrong size")
	}
	return key, nil
}

func (s *FileKeyStore) create(ctx context.Context) ([]byte, error) {
	key := make([]byte, vaultDomain.VaultKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, apperrors.Wrapf(vaultDomain.ErrDeviceKeyUnavailable, "failed to generate key: %v", err)
	}

	wrapped, err := s.keeper.Encrypt(ctx, key)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, apperrors.Wrapf(vaultDomain.ErrDeviceKeyUnavailable, "failed to wrap key: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		cryptoDomain.Zero(key)
		return nil, apperrors.Wrapf(vaultDomain.ErrDeviceKeyUnavailable, "failed to create key directory: %v", err)
	}

	// O_EXCL makes a concurrent creator lose instead of overwriting a key in use.
	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		cryptoDomain.Zero(key)
		if errors.Is(err, fs.ErrExist) {
			return s.LoadOrCreate(ctx)
		}
		return nil, apperrors.Wrapf(vaultDomain.ErrDeviceKeyUnavailable, "failed to create key file: %v", err)
	}

	_, writeErr := file.Write(wrapped)
	closeErr := file.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		cryptoDomain.Zero(key)
		_ = os.Remove(s.path)
		return nil, apperrors.Wrapf(vaultDomain.ErrDeviceKeyUnavailable, "failed to write key file: %v", err)
	}

	return key, nil
}

// Delete removes the key file. A missing file is not an error. Every vault sealed
// with the deleted key becomes unreadable.
func (s *FileKeyStore) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.Wrap(err, "failed to delete device key")
	}
	return nil
}
