package usecase

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID stores the request id that Record attaches to new entries.
func WithRequestID(ctx context.Context, requestID uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(uuid.UUID)
	return requestID, ok
}
