package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
	apperrors "github.com/allisson/legacyvault/internal/errors"
)

type auditLogUseCase struct {
	auditLogRepo AuditLogRepository
}

// Record builds an entry with a UUIDv7 id and the current UTC time and stores it.
func (a *auditLogUseCase) Record(
	ctx context.Context,
	userID string,
	event auditDomain.EventType,
	success bool,
	metadata map[string]any,
) error {
	auditLog := &auditDomain.AuditLog{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		EventType: event,
		Success:   success,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if requestID, ok := RequestIDFromContext(ctx); ok {
		auditLog.RequestID = &requestID
	}

	if err := a.auditLogRepo.Create(ctx, auditLog); err != nil {
		return apperrors.Wrap(err, "failed to create audit log")
	}

	return nil
}

// ListByUserID returns a page of the user's entries.
func (a *auditLogUseCase) ListByUserID(
	ctx context.Context,
	userID string,
	offset, limit int,
) ([]*auditDomain.AuditLog, error) {
	auditLogs, err := a.auditLogRepo.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}

	return auditLogs, nil
}

// NewAuditLogUseCase creates a new AuditLogUseCase.
func NewAuditLogUseCase(auditLogRepo AuditLogRepository) AuditLogUseCase {
	return &auditLogUseCase{
		auditLogRepo: auditLogRepo,
	}
}
