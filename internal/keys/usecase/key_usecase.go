// Package usecase implements the user keypair vault.
//
// Each user owns one active X25519 keypair. The private key is sealed with an AEAD
// under a key derived from the user's password (PBKDF2-SHA256 or Argon2id) and a
// per-record random salt, so the server stores only ciphertext, salt, nonce and the
// public key:
//
//	password + salt --KDF--> derived key --AEAD(aad = user, version, public key)--> sealed private key
//
// The derived key and decrypted private keys are zeroed as soon as they have been
// used. Every failure to recover a private key is reported as
// keysDomain.ErrKeyAuthenticationFailed, whatever the cause.
//
// Audit entries are best effort: a failure to record one is logged and never fails
// the key operation.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
	auditUseCase "github.com/allisson/legacyvault/internal/audit/usecase"
	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	cryptoService "github.com/allisson/legacyvault/internal/crypto/service"
	"github.com/allisson/legacyvault/internal/database"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
	"github.com/allisson/legacyvault/internal/validation"
)

// Config holds the parameters applied to newly sealed key records. Existing records
// keep the algorithm and KDF parameters they were created with.
type Config struct {
	Algorithm      cryptoDomain.Algorithm
	KDFParams      cryptoDomain.KDFParams
	SaltSize       int
	PasswordPolicy validation.PasswordStrength
}

// DefaultConfig returns AES-GCM, PBKDF2-SHA256 with 210k iterations, a 32-byte salt
// and the default password policy.
func DefaultConfig() Config {
	return Config{
		Algorithm:      cryptoDomain.AESGCM,
		KDFParams:      cryptoDomain.DefaultPBKDF2Params(),
		SaltSize:       cryptoDomain.DefaultSaltSize,
		PasswordPolicy: validation.DefaultPasswordStrength,
	}
}

type keyUseCase struct {
	txManager        database.TxManager
	keyRepo          KeyRepository
	auditLogUseCase  auditUseCase.AuditLogUseCase
	aeadManager      cryptoService.AEADManager
	keyDeriver       cryptoService.KeyDeriver
	keyPairGenerator cryptoService.KeyPairGenerator
	cfg              Config
	logger           *slog.Logger
}

// Generate validates the password, refuses a second active keypair and stores a new
// version 1 record.
func (k *keyUseCase) Generate(ctx context.Context, userID, password string) (*keysDomain.UserKeyRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, keysDomain.ErrUserIDRequired
	}
	if err := k.checkPassword(password); err != nil {
		return nil, err
	}

	_, err := k.keyRepo.GetActiveByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, keysDomain.ErrKeysAlreadyExist
	case !apperrors.Is(err, keysDomain.ErrKeysNotFound):
		return nil, err
	}

	record, err := k.seal(userID, password, 1)
	if err != nil {
		return nil, err
	}

	// A concurrent Generate for the same user loses here on the unique index.
	if err := k.keyRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	k.audit(ctx, userID, auditDomain.EventKeysGenerate, true, map[string]any{
		"key_id":  record.ID.String(),
		"version": record.Version,
	})

	return record, nil
}

// GetPublicKey returns the active record.
func (k *keyUseCase) GetPublicKey(ctx context.Context, userID string) (*keysDomain.UserKeyRecord, error) {
	record, err := k.keyRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	k.audit(ctx, userID, auditDomain.EventKeysRetrievePublic, true, map[string]any{
		"key_id": record.ID.String(),
	})

	return record, nil
}

// RetrievePrivateKey re-derives the key from the stored salt and opens the sealed
// private key. The record is never modified.
func (k *keyUseCase) RetrievePrivateKey(
	ctx context.Context,
	userID, password string,
) (*keysDomain.KeyPair, error) {
	record, err := k.keyRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	privateKey, err := k.open(record, password)
	if err != nil {
		k.audit(ctx, userID, auditDomain.EventKeysRetrievePrivate, false, map[string]any{
			"key_id": record.ID.String(),
		})
		return nil, err
	}

	k.audit(ctx, userID, auditDomain.EventKeysRetrievePrivate, true, map[string]any{
		"key_id": record.ID.String(),
	})

	return &keysDomain.KeyPair{
		PublicKey:  record.PublicKey,
		PrivateKey: privateKey,
	}, nil
}

// Rotate proves knowledge of currentPassword, then atomically deactivates the active
// record and stores a new keypair sealed under newPassword with version+1.
//
// The old private key is not carried over. Data sealed to the old public key must be
// re-encrypted by the client before rotating.
func (k *keyUseCase) Rotate(
	ctx context.Context,
	userID, currentPassword, newPassword string,
) (*keysDomain.UserKeyRecord, error) {
	if err := k.checkPassword(newPassword); err != nil {
		return nil, err
	}

	current, err := k.keyRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldPrivateKey, err := k.open(current, currentPassword)
	if err != nil {
		k.audit(ctx, userID, auditDomain.EventKeysRotate, false, map[string]any{
			"old_key_id": current.ID.String(),
		})
		return nil, err
	}
	cryptoDomain.Zero(oldPrivateKey)

	next, err := k.seal(userID, newPassword, current.Version+1)
	if err != nil {
		return nil, err
	}

	err = k.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := k.keyRepo.Deactivate(ctx, current); err != nil {
			return err
		}
		return k.keyRepo.Create(ctx, next)
	})
	if err != nil {
		return nil, err
	}

	k.audit(ctx, userID, auditDomain.EventKeysRotate, true, map[string]any{
		"old_key_id": current.ID.String(),
		"new_key_id": next.ID.String(),
		"version":    next.Version,
	})

	return next, nil
}

func (k *keyUseCase) checkPassword(password string) error {
	if violations := k.cfg.PasswordPolicy.Violations(password); len(violations) > 0 {
		return keysDomain.NewWeakPasswordError(violations)
	}
	return nil
}

// seal generates a keypair and salt and returns an active record whose private key is
// encrypted under the key derived from password.
func (k *keyUseCase) seal(userID, password string, version uint) (*keysDomain.UserKeyRecord, error) {
	publicKey, privateKey, err := k.keyPairGenerator.Generate()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(privateKey)

	salt, err := cryptoService.GenerateSalt(k.cfg.SaltSize)
	if err != nil {
		return nil, err
	}

	passwordBytes := []byte(password)
	defer cryptoDomain.Zero(passwordBytes)

	derivedKey, err := k.keyDeriver.Derive(passwordBytes, salt, k.cfg.KDFParams)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(derivedKey)

	cipher, err := k.aeadManager.CreateCipher(derivedKey, k.cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &keysDomain.UserKeyRecord{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		PublicKey: publicKey,
		Salt:      salt,
		Algorithm: k.cfg.Algorithm,
		KDFParams: k.cfg.KDFParams,
		Version:   version,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	record.EncryptedPrivateKey, record.Nonce, err = cipher.Encrypt(privateKey, record.AdditionalData())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt private key")
	}

	return record, nil
}

// open returns the decrypted private key. Every failure maps to
// ErrKeyAuthenticationFailed; the underlying cause is only logged at debug level.
func (k *keyUseCase) open(record *keysDomain.UserKeyRecord, password string) ([]byte, error) {
	passwordBytes := []byte(password)
	defer cryptoDomain.Zero(passwordBytes)

	derivedKey, err := k.keyDeriver.Derive(passwordBytes, record.Salt, record.KDFParams)
	if err != nil {
		k.logger.Debug("key derivation failed", slog.String("key_id", record.ID.String()), slog.Any("error", err))
		return nil, keysDomain.ErrKeyAuthenticationFailed
	}
	defer cryptoDomain.Zero(derivedKey)

	cipher, err := k.aeadManager.CreateCipher(derivedKey, record.Algorithm)
	if err != nil {
		k.logger.Debug("cipher creation failed", slog.String("key_id", record.ID.String()), slog.Any("error", err))
		return nil, keysDomain.ErrKeyAuthenticationFailed
	}

	privateKey, err := cipher.Decrypt(record.EncryptedPrivateKey, record.Nonce, record.AdditionalData())
	if err != nil {
		return nil, keysDomain.ErrKeyAuthenticationFailed
	}

	return privateKey, nil
}

func (k *keyUseCase) audit(
	ctx context.Context,
	userID string,
	event auditDomain.EventType,
	success bool,
	metadata map[string]any,
) {
	if err := k.auditLogUseCase.Record(ctx, userID, event, success, metadata); err != nil {
		k.logger.Warn("failed to record key audit log",
			slog.String("user_id", userID),
			slog.String("event", string(event)),
			slog.Any("error", err),
		)
	}
}

// NewKeyUseCase creates a new KeyUseCase.
func NewKeyUseCase(
	txManager database.TxManager,
	keyRepo KeyRepository,
	auditLogUseCase auditUseCase.AuditLogUseCase,
	aeadManager cryptoService.AEADManager,
	keyDeriver cryptoService.KeyDeriver,
	keyPairGenerator cryptoService.KeyPairGenerator,
	cfg Config,
	logger *slog.Logger,
) KeyUseCase {
	return &keyUseCase{
		txManager:        txManager,
		keyRepo:          keyRepo,
		auditLogUseCase:  auditLogUseCase,
		aeadManager:      aeadManager,
		keyDeriver:       keyDeriver,
		keyPairGenerator: keyPairGenerator,
		cfg:              cfg,
		logger:           logger,
	}
}
