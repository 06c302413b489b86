// Package domain defines the key audit trail. Entries are append-only.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a key vault operation.
type EventType string

const (
	EventKeysGenerate        EventType = "keys.generate"
	EventKeysRetrievePublic  EventType = "keys.retrieve_public"
	EventKeysRetrievePrivate EventType = "keys.retrieve_private"
	EventKeysRotate          EventType = "keys.rotate"
)

// AuditLog records one key vault operation for one user.
type AuditLog struct {
	ID        uuid.UUID
	RequestID *uuid.UUID
	UserID    string
	EventType EventType
	Success   bool
	Metadata  map[string]any
	CreatedAt time.Time
}
