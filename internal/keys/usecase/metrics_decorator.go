package usecase

import (
	"context"
	"time"

	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
	"github.com/allisson/legacyvault/internal/metrics"
)

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (k *keyUseCaseWithMetrics) Generate(
	ctx context.Context,
	userID, password string,
) (*keysDomain.UserKeyRecord, error) {
	start := time.Now()
	record, err := k.next.Generate(ctx, userID, password)
	metrics.Observe(ctx, k.metrics, "keys", "generate", start, err)
	return record, err
}

func (k *keyUseCaseWithMetrics) GetPublicKey(ctx context.Context, userID string) (*keysDomain.UserKeyRecord, error) {
	start := time.Now()
	record, err := k.next.GetPublicKey(ctx, userID)
	metrics.Observe(ctx, k.metrics, "keys", "get_public_key", start, err)
	return record, err
}

// RetrievePrivateKey records wrong passwords with the "denied" status.
func (k *keyUseCaseWithMetrics) RetrievePrivateKey(
	ctx context.Context,
	userID, password string,
) (*keysDomain.KeyPair, error) {
	start := time.Now()
	keyPair, err := k.next.RetrievePrivateKey(ctx, userID, password)
	metrics.Observe(ctx, k.metrics, "keys", "retrieve_private_key", start, err)
	return keyPair, err
}

func (k *keyUseCaseWithMetrics) Rotate(
	ctx context.Context,
	userID, currentPassword, newPassword string,
) (*keysDomain.UserKeyRecord, error) {
	start := time.Now()
	record, err := k.next.Rotate(ctx, userID, currentPassword, newPassword)
	metrics.Observe(ctx, k.metrics, "keys", "rotate", start, err)
	return record, err
}
