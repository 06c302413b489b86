// Package usecase records and lists key vault audit entries.
package usecase

import (
	"context"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
)

// AuditLogRepository persists audit entries.
type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *auditDomain.AuditLog) error
	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*auditDomain.AuditLog, error)
}

// AuditLogUseCase is the audit trail API used by the key vault and the HTTP layer.
type AuditLogUseCase interface {
	// Record appends an entry. The request id, when present, is read from ctx.
	Record(
		ctx context.Context,
		userID string,
		event auditDomain.EventType,
		success bool,
		metadata map[string]any,
	) error

	// ListByUserID returns a user's entries, newest first.
	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]*auditDomain.AuditLog, error)
}
