// Package repository stores sealed offline vault rows in a local SQLite file.
//
// Nothing in the file is readable without the device key: document rows and the key
// check record are sealed before they reach this package. Only the document id and
// its size are stored in clear.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/legacyvault/internal/database"
	apperrors "github.com/allisson/legacyvault/internal/errors"
	vaultDomain "github.com/allisson/legacyvault/internal/offlinevault/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS offline_documents (
		id TEXT PRIMARY KEY,
		record BLOB NOT NULL,
		nonce BLOB NOT NULL,
		file_size INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vault_meta (
		name TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		nonce BLOB NOT NULL
	)`,
}

// SQLiteDocumentRepository implements usecase.DocumentRepository.
type SQLiteDocumentRepository struct {
	db *sql.DB
}

// EnsureSchema creates the vault tables when missing.
func (s *SQLiteDocumentRepository) EnsureSchema(ctx context.Context) error {
	querier := database.GetTx(ctx, s.db)

	for _, stmt := range schema {
		if _, err := querier.ExecContext(ctx, stmt); err != nil {
			return apperrors.Wrap(err, "failed to create vault schema")
		}
	}

	return nil
}

// Upsert inserts or replaces a document row.
func (s *SQLiteDocumentRepository) Upsert(ctx context.Context, doc *vaultDomain.SealedDocument) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO offline_documents (id, record, nonce, file_size)
			  VALUES (?, ?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET
			  record = excluded.record, nonce = excluded.nonce, file_size = excluded.file_size`

	if _, err := querier.ExecContext(ctx, query, doc.ID, doc.Record, doc.Nonce, doc.FileSize); err != nil {
		return apperrors.Wrap(err, "failed to upsert document")
	}

	return nil
}

// Get returns one row or ErrDocumentNotFound.
func (s *SQLiteDocumentRepository) Get(ctx context.Context, id string) (*vaultDomain.SealedDocument, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT id, record, nonce, file_size FROM offline_documents WHERE id = ?`

	var doc vaultDomain.SealedDocument
	err := querier.QueryRowContext(ctx, query, id).Scan(&doc.ID, &doc.Record, &doc.Nonce, &doc.FileSize)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, vaultDomain.ErrDocumentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get document")
	}

	return &doc, nil
}

// List returns every row ordered by id.
func (s *SQLiteDocumentRepository) List(ctx context.Context) ([]*vaultDomain.SealedDocument, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT id, record, nonce, file_size FROM offline_documents ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list documents")
	}
	defer func() {
		_ = rows.Close()
	}()

	docs := make([]*vaultDomain.SealedDocument, 0)
	for rows.Next() {
		var doc vaultDomain.SealedDocument
		if err := rows.Scan(&doc.ID, &doc.Record, &doc.Nonce, &doc.FileSize); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan document")
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate documents")
	}

	return docs, nil
}

// Delete removes a row and reports whether it existed.
func (s *SQLiteDocumentRepository) Delete(ctx context.Context, id string) (bool, error) {
	querier := database.GetTx(ctx, s.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM offline_documents WHERE id = ?`, id)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete document")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to read affected rows")
	}

	return affected > 0, nil
}

// DeleteAll removes every document. The key check record is kept.
func (s *SQLiteDocumentRepository) DeleteAll(ctx context.Context) error {
	querier := database.GetTx(ctx, s.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM offline_documents`); err != nil {
		return apperrors.Wrap(err, "failed to clear documents")
	}

	return nil
}

// Stats counts documents and sums their sizes.
func (s *SQLiteDocumentRepository) Stats(ctx context.Context) (vaultDomain.Stats, error) {
	querier := database.GetTx(ctx, s.db)

	query := `SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM offline_documents`

	var stats vaultDomain.Stats
	if err := querier.QueryRowContext(ctx, query).Scan(&stats.DocumentCount, &stats.TotalSize); err != nil {
		return vaultDomain.Stats{}, apperrors.Wrap(err, "failed to compute vault stats")
	}

	return stats, nil
}

// GetMeta returns a sealed metadata value. ok is false when the name is unknown.
func (s *SQLiteDocumentRepository) GetMeta(
	ctx context.Context,
	name string,
) (value, nonce []byte, ok bool, err error) {
	querier := database.GetTx(ctx, s.db)

	err = querier.QueryRowContext(ctx, `SELECT value, nonce FROM vault_meta WHERE name = ?`, name).
		Scan(&value, &nonce)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, false, nil
		}
		return nil, nil, false, apperrors.Wrap(err, "failed to get vault metadata")
	}

	return value, nonce, true, nil
}

// PutMeta stores a sealed metadata value.
func (s *SQLiteDocumentRepository) PutMeta(ctx context.Context, name string, value, nonce []byte) error {
	querier := database.GetTx(ctx, s.db)

	query := `INSERT INTO vault_meta (name, value, nonce) VALUES (?, ?, ?)
			  ON CONFLICT(name) DO UPDATE SET value = excluded.value, nonce = excluded.nonce`

	if _, err := querier.ExecContext(ctx, query, name, value, nonce); err != nil {
		return apperrors.Wrap(err, "failed to put vault metadata")
	}

	return nil
}

// NewSQLiteDocumentRepository creates a new SQLite document repository.
func NewSQLiteDocumentRepository(db *sql.DB) *SQLiteDocumentRepository {
	return &SQLiteDocumentRepository{db: db}
}
