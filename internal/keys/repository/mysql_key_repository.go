package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/allisson/legacyvault/internal/database"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
)

// MySQLKeyRepository stores key records in user_encryption_keys with the id as
// BINARY(16). MySQL has no partial indexes, so uniqueness of the active record is
// enforced on the generated column active_user_id.
type MySQLKeyRepository struct {
	db *sql.DB
}

// Create inserts a record. A duplicate active_user_id is reported as ErrKeysAlreadyExist.
func (m *MySQLKeyRepository) Create(ctx context.Context, record *keysDomain.UserKeyRecord) error {
	querier := database.GetTx(ctx, m.db)

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user key id")
	}

	kdfParams, err := json.Marshal(record.KDFParams)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal kdf params")
	}

	query := `INSERT INTO user_encryption_keys (id, user_id, public_key, encrypted_private_key, salt, nonce,
			  algorithm, kdf_params, version, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		record.UserID,
		record.PublicKey,
		record.EncryptedPrivateKey,
		record.Salt,
		record.Nonce,
		string(record.Algorithm),
		kdfParams,
		record.Version,
		record.IsActive,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return keysDomain.ErrKeysAlreadyExist
		}
		return apperrors.Wrap(err, "failed to create user key")
	}

	return nil
}

// GetActiveByUserID returns the user's active record or ErrKeysNotFound.
func (m *MySQLKeyRepository) GetActiveByUserID(
	ctx context.Context,
	userID string,
) (*keysDomain.UserKeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, user_id, public_key, encrypted_private_key, salt, nonce, algorithm, kdf_params,
			  version, is_active, created_at, updated_at
			  FROM user_encryption_keys
			  WHERE active_user_id = ?`

	var (
		record    keysDomain.UserKeyRecord
		id        []byte
		algorithm string
		kdfParams []byte
	)
	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&id,
		&record.UserID,
		&record.PublicKey,
		&record.EncryptedPrivateKey,
		&record.Salt,
		&record.Nonce,
		&algorithm,
		&kdfParams,
		&record.Version,
		&record.IsActive,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, keysDomain.ErrKeysNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get active user key")
	}

	if err := record.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user key id")
	}

	if err := decodeColumns(&record, algorithm, kdfParams); err != nil {
		return nil, err
	}

	return &record, nil
}

// Deactivate clears is_active, which also nulls active_user_id.
func (m *MySQLKeyRepository) Deactivate(ctx context.Context, record *keysDomain.UserKeyRecord) error {
	querier := database.GetTx(ctx, m.db)

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user key id")
	}

	query := `UPDATE user_encryption_keys
			  SET is_active = FALSE, updated_at = ?
			  WHERE id = ? AND is_active = TRUE`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to deactivate user key")
	}

	return checkDeactivated(result, record)
}

// NewMySQLKeyRepository creates a new MySQL key repository.
func NewMySQLKeyRepository(db *sql.DB) *MySQLKeyRepository {
	return &MySQLKeyRepository{db: db}
}
