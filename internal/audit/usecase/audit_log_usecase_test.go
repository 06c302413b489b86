package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
	auditMocks "github.com/allisson/legacyvault/internal/audit/usecase/mocks"
)

func TestAuditLogUseCase_Record(t *testing.T) {
	t.Run("Success_AttachesRequestID", func(t *testing.T) {
		mockRepo := auditMocks.NewMockAuditLogRepository(t)
		requestID := uuid.Must(uuid.NewV7())
		ctx := WithRequestID(context.Background(), requestID)

		var stored *auditDomain.AuditLog
		mockRepo.EXPECT().
			Create(ctx, mock.Anything).
			Run(func(ctx context.Context, auditLog *auditDomain.AuditLog) {
				stored = auditLog
			}).
			Return(nil).
			Once()

		uc := NewAuditLogUseCase(mockRepo)
		err := uc.Record(ctx, "user-1", auditDomain.EventKeysGenerate, true, map[string]any{"version": 1})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, uuid.Version(7), stored.ID.Version())
		require.NotNil(t, stored.RequestID)
		assert.Equal(t, requestID, *stored.RequestID)
		assert.Equal(t, "user-1", stored.UserID)
		assert.Equal(t, auditDomain.EventKeysGenerate, stored.EventType)
		assert.True(t, stored.Success)
		assert.Equal(t, time.UTC, stored.CreatedAt.Location())
	})

	t.Run("Success_NoRequestID", func(t *testing.T) {
		mockRepo := auditMocks.NewMockAuditLogRepository(t)
		mockRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(auditLog *auditDomain.AuditLog) bool {
				return auditLog.RequestID == nil && !auditLog.Success
			})).
			Return(nil).
			Once()

		uc := NewAuditLogUseCase(mockRepo)
		err := uc.Record(context.Background(), "user-1", auditDomain.EventKeysRetrievePrivate, false, nil)
		assert.NoError(t, err)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		dbErr := errors.New("database error")
		mockRepo := auditMocks.NewMockAuditLogRepository(t)
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr).Once()

		uc := NewAuditLogUseCase(mockRepo)
		err := uc.Record(context.Background(), "user-1", auditDomain.EventKeysRotate, true, nil)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuditLogUseCase_ListByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		logs := []*auditDomain.AuditLog{{UserID: "user-1", EventType: auditDomain.EventKeysGenerate}}
		mockRepo := auditMocks.NewMockAuditLogRepository(t)
		mockRepo.EXPECT().ListByUserID(ctx, "user-1", 0, 50).Return(logs, nil).Once()

		got, err := NewAuditLogUseCase(mockRepo).ListByUserID(ctx, "user-1", 0, 50)
		require.NoError(t, err)
		assert.Equal(t, logs, got)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		dbErr := errors.New("database error")
		mockRepo := auditMocks.NewMockAuditLogRepository(t)
		mockRepo.EXPECT().ListByUserID(ctx, "user-1", 0, 50).Return(nil, dbErr).Once()

		_, err := NewAuditLogUseCase(mockRepo).ListByUserID(ctx, "user-1", 0, 50)
		assert.ErrorIs(t, err, dbErr)
	})
}
