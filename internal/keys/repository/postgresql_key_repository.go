// Package repository persists user key records in PostgreSQL or MySQL.
//
// Both schemas enforce one active record per user with a unique index, so a
// concurrent second insert fails with keysDomain.ErrKeysAlreadyExist.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	"github.com/allisson/legacyvault/internal/database"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
)

// PostgreSQLKeyRepository stores key records in user_encryption_keys.
type PostgreSQLKeyRepository struct {
	db *sql.DB
}

// Create inserts a record. A second active record for the same user violates the
// partial unique index and is reported as ErrKeysAlreadyExist.
func (p *PostgreSQLKeyRepository) Create(ctx context.Context, record *keysDomain.UserKeyRecord) error {
	querier := database.GetTx(ctx, p.db)

	kdfParams, err := json.Marshal(record.KDFParams)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal kdf params")
	}

	query := `INSERT INTO user_encryption_keys (id, user_id, public_key, encrypted_private_key, salt, nonce,
			  algorithm, kdf_params, version, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = querier.ExecContext(
		ctx,
		query,
		record.ID,
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
func (p *PostgreSQLKeyRepository) GetActiveByUserID(
	ctx context.Context,
	userID string,
) (*keysDomain.UserKeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, public_key, encrypted_private_key, salt, nonce, algorithm, kdf_params,
			  version, is_active, created_at, updated_at
			  FROM user_encryption_keys
			  WHERE user_id = $1 AND is_active = TRUE
			  LIMIT 1`

	var (
		record    keysDomain.UserKeyRecord
		algorithm string
		kdfParams []byte
	)
	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&record.ID,
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

	if err := decodeColumns(&record, algorithm, kdfParams); err != nil {
		return nil, err
	}

	return &record, nil
}

// Deactivate clears is_active on the record. It fails with ErrKeysNotFound when the
// record was already deactivated, which makes a concurrent rotation roll back.
func (p *PostgreSQLKeyRepository) Deactivate(ctx context.Context, record *keysDomain.UserKeyRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE user_encryption_keys
			  SET is_active = FALSE, updated_at = $1
			  WHERE id = $2 AND is_active = TRUE`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), record.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to deactivate user key")
	}

	return checkDeactivated(result, record)
}

func decodeColumns(record *keysDomain.UserKeyRecord, algorithm string, kdfParams []byte) error {
	record.Algorithm = cryptoDomain.Algorithm(algorithm)
	if err := json.Unmarshal(kdfParams, &record.KDFParams); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal kdf params")
	}
	return nil
}

func checkDeactivated(result sql.Result, record *keysDomain.UserKeyRecord) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to deactivate user key")
	}
	if rows == 0 {
		return keysDomain.ErrKeysNotFound
	}
	record.IsActive = false
	return nil
}

// NewPostgreSQLKeyRepository creates a new PostgreSQL key repository.
func NewPostgreSQLKeyRepository(db *sql.DB) *PostgreSQLKeyRepository {
	return &PostgreSQLKeyRepository{db: db}
}
