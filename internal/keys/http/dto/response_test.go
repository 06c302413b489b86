package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
)

func TestMapRecordToGetPublicKeyResponse_OmitsSealedKey(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	record := &keysDomain.UserKeyRecord{
		PublicKey:           []byte{1, 2, 3},
		EncryptedPrivateKey: []byte("sealed"),
		Salt:                []byte("salt"),
		Algorithm:           cryptoDomain.AESGCM,
		Version:             3,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	body, err := json.Marshal(MapRecordToGetPublicKeyResponse(record))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"success": true,
		"publicKey": "AQID",
		"metadata": {
			"version": 3,
			"algorithm": "aes-gcm",
			"createdAt": "2026-01-02T03:04:05Z",
			"updatedAt": "2026-01-02T03:04:05Z"
		}
	}`, string(body))
}

func TestMapKeyPairToResponse(t *testing.T) {
	resp := MapKeyPairToResponse(&keysDomain.KeyPair{PublicKey: []byte{1, 2, 3}, PrivateKey: []byte{4, 5, 6}})

	assert.True(t, resp.Success)
	assert.Equal(t, "AQID", resp.PublicKey)
	assert.Equal(t, "BAUG", resp.PrivateKey)
	assert.Equal(t, MessageKeysRetrieved, resp.Message)
}

func TestMapAuditLogsToListResponse(t *testing.T) {
	t.Run("EmptyIsArray", func(t *testing.T) {
		body, err := json.Marshal(MapAuditLogsToListResponse(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[]}`, string(body))
	})

	t.Run("MapsRequestID", func(t *testing.T) {
		requestID := uuid.Must(uuid.NewV7())
		resp := MapAuditLogsToListResponse([]*auditDomain.AuditLog{
			{ID: uuid.Must(uuid.NewV7()), RequestID: &requestID, EventType: auditDomain.EventKeysRotate, Success: true},
			{ID: uuid.Must(uuid.NewV7()), EventType: auditDomain.EventKeysGenerate},
		})

		require.Len(t, resp.Data, 2)
		require.NotNil(t, resp.Data[0].RequestID)
		assert.Equal(t, requestID.String(), *resp.Data[0].RequestID)
		assert.Equal(t, "keys.rotate", resp.Data[0].EventType)
		assert.Nil(t, resp.Data[1].RequestID)
	})
}
