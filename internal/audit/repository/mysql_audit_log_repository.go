package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
	"github.com/allisson/legacyvault/internal/database"
	apperrors "github.com/allisson/legacyvault/internal/errors"
)

// MySQLAuditLogRepository stores audit entries with UUIDs as BINARY(16).
type MySQLAuditLogRepository struct {
	db *sql.DB
}

// Create inserts an entry. A missing request id and nil metadata are stored as NULL.
func (m *MySQLAuditLogRepository) Create(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	querier := database.GetTx(ctx, m.db)

	metadataJSON, err := marshalMetadata(auditLog.Metadata)
	if err != nil {
		return err
	}

	id, err := auditLog.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal audit log id")
	}

	var requestID []byte
	if auditLog.RequestID != nil {
		if requestID, err = auditLog.RequestID.MarshalBinary(); err != nil {
			return apperrors.Wrap(err, "failed to marshal audit log request_id")
		}
	}

	query := `INSERT INTO key_audit_logs (id, request_id, user_id, event_type, success, metadata, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		requestID,
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

// ListByUserID returns the user's entries newest first.
func (m *MySQLAuditLogRepository) ListByUserID(
	ctx context.Context,
	userID string,
	offset, limit int,
) ([]*auditDomain.AuditLog, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, request_id, user_id, event_type, success, metadata, created_at
			  FROM key_audit_logs
			  WHERE user_id = ?
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

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
		var idBinary, requestIDBinary, metadataJSON []byte
		var eventType string

		err := rows.Scan(
			&idBinary,
			&requestIDBinary,
			&auditLog.UserID,
			&eventType,
			&auditLog.Success,
			&metadataJSON,
			&auditLog.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit log")
		}

		if err := auditLog.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal audit log id")
		}

		if requestIDBinary != nil {
			var requestID uuid.UUID
			if err := requestID.UnmarshalBinary(requestIDBinary); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal audit log request_id")
			}
			auditLog.RequestID = &requestID
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

// NewMySQLAuditLogRepository creates a new MySQL audit log repository.
func NewMySQLAuditLogRepository(db *sql.DB) *MySQLAuditLogRepository {
	return &MySQLAuditLogRepository{db: db}
}
