package dto

import (
	"encoding/base64"
	"time"

	auditDomain "github.com/allisson/legacyvault/internal/audit/domain"
	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
)

// Response messages.
const (
	MessageKeysGenerated = "Encryption keys generated successfully"
	MessageKeysRetrieved = "Encryption keys retrieved successfully"
	MessageKeysRotated   = "Encryption keys rotated successfully"
)

// PublicKeyResponse is returned by generate and rotate. The sealed private key is
// never part of it.
type PublicKeyResponse struct {
	Success   bool   `json:"success"`
	PublicKey string `json:"publicKey"`
	Message   string `json:"message"`
}

// KeyMetadata describes the active record without any key material.
type KeyMetadata struct {
	Version   uint      `json:"version"`
	Algorithm string    `json:"algorithm"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetPublicKeyResponse is returned by GET /keys.
type GetPublicKeyResponse struct {
	Success   bool        `json:"success"`
	PublicKey string      `json:"publicKey"`
	Metadata  KeyMetadata `json:"metadata"`
}

// KeyPairResponse is returned by POST /keys.
// SECURITY: it carries the plaintext private key and must only travel over TLS.
type KeyPairResponse struct {
	Success    bool   `json:"success"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Message    string `json:"message"`
}

// AuditLogResponse is one entry of GET /keys/audit-logs.
type AuditLogResponse struct {
	ID        string         `json:"id"`
	RequestID *string        `json:"requestId,omitempty"`
	EventType string         `json:"eventType"`
	Success   bool           `json:"success"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ListAuditLogsResponse wraps a page of entries.
type ListAuditLogsResponse struct {
	Data []AuditLogResponse `json:"data"`
}

// MapRecordToPublicKeyResponse maps a freshly generated or rotated record.
func MapRecordToPublicKeyResponse(record *keysDomain.UserKeyRecord, message string) PublicKeyResponse {
	return PublicKeyResponse{
		Success:   true,
		PublicKey: base64.StdEncoding.EncodeToString(record.PublicKey),
		Message:   message,
	}
}

// MapRecordToGetPublicKeyResponse maps the active record.
func MapRecordToGetPublicKeyResponse(record *keysDomain.UserKeyRecord) GetPublicKeyResponse {
	return GetPublicKeyResponse{
		Success:   true,
		PublicKey: base64.StdEncoding.EncodeToString(record.PublicKey),
		Metadata: KeyMetadata{
			Version:   record.Version,
			Algorithm: string(record.Algorithm),
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		},
	}
}

// MapKeyPairToResponse encodes both keys. The caller must zero the key pair afterwards.
func MapKeyPairToResponse(keyPair *keysDomain.KeyPair) KeyPairResponse {
	return KeyPairResponse{
		Success:    true,
		PrivateKey: base64.StdEncoding.EncodeToString(keyPair.PrivateKey),
		PublicKey:  base64.StdEncoding.EncodeToString(keyPair.PublicKey),
		Message:    MessageKeysRetrieved,
	}
}

// MapAuditLogsToListResponse maps a page of entries. The result is never nil so the
// body always carries an array.
func MapAuditLogsToListResponse(auditLogs []*auditDomain.AuditLog) ListAuditLogsResponse {
	data := make([]AuditLogResponse, 0, len(auditLogs))
	for _, auditLog := range auditLogs {
		item := AuditLogResponse{
			ID:        auditLog.ID.String(),
			EventType: string(auditLog.EventType),
			Success:   auditLog.Success,
			Metadata:  auditLog.Metadata,
			CreatedAt: auditLog.CreatedAt,
		}
		if auditLog.RequestID != nil {
			requestID := auditLog.RequestID.String()
			item.RequestID = &requestID
		}
		data = append(data, item)
	}
	return ListAuditLogsResponse{Data: data}
}
