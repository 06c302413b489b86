// Package repository persists key audit entries in PostgreSQL or MySQL.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
	"github.com/allisson/legacyvault/internal/database"
	apperrors "github.com/allisson/legacyvault/internal/errors"
)

// PostgreSQLAuditLogRepository stores audit entries using native UUID and JSONB columns.
type PostgreSQLAuditLogRepository struct {
	db *sql.DB
}

// Create inserts an entry. Nil metadata is stored as NULL.
func (p *PostgreSQLAuditLogRepository) Create(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	querier := database.GetTx(ctx, p.db)

	metadataJSON, err := marshalMetadata(auditLog.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO key_audit_logs (id, request_id, user_id, event_type, success, metadata, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = querier.ExecContext(
		ctx,
		query,
		auditLog.ID,
		auditLog.RequestID,
		auditLog.UserID,
		string(auditLog.EventType),
		auditLog.Success,
		metadataJSON,
		auditLog.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}

	return nil
}

// ListByUserID returns the user's entries newest first. UUIDv7 ids sort by time.
func (p *PostgreSQLAuditLogRepository) ListByUserID(
	ctx context.Context,
	userID string,
	offset, limit int,
) ([]*auditDomain.AuditLog, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, request_id, user_id, event_type, success, metadata, created_at
			  FROM key_audit_logs
			  WHERE user_id = $1
			  ORDER BY id DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	auditLogs := make([]*auditDomain.AuditLog, 0)
	for rows.Next() {
		var auditLog auditDomain.AuditLog
		var eventType string
		var metadataJSON []byte

		err := rows.Scan(
			&auditLog.ID,
			&auditLog.RequestID,
			&auditLog.UserID,
			&eventType,
			&auditLog.Success,
			&metadataJSON,
			&auditLog.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit log")
		}

		auditLog.EventType = auditDomain.EventType(eventType)
		if auditLog.Metadata, err = unmarshalMetadata(metadataJSON); err != nil {
			return nil, err
		}

		auditLogs = append(auditLogs, &auditLog)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit logs")
	}

	return auditLogs, nil
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal audit log metadata")
	}
	return metadataJSON, nil
}

func unmarshalMetadata(metadataJSON []byte) (map[string]any, error) {
	if metadataJSON == nil {
		return nil, nil
	}
	var metadata map[string]any
	if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal audit log metadata")
	}
	return metadata, nil
}

// NewPostgreSQLAuditLogRepository creates a new PostgreSQL audit log repository.
func NewPostgreSQLAuditLogRepository(db *sql.DB) *PostgreSQLAuditLogRepository {
	return &PostgreSQLAuditLogRepository{db: db}
}
