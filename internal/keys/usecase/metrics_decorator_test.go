package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	keysDomain "github.com/allisson/legacyvault/internal/keys/domain"
	keysMocks "github.com/allisson/legacyvault/internal/keys/usecase/mocks"
	"github.com/allisson/legacyvault/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "keys", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "keys", operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestNewKeyUseCaseWithMetrics(t *testing.T) {
	decorator := NewKeyUseCaseWithMetrics(keysMocks.NewMockKeyUseCase(t), &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*KeyUseCase)(nil), decorator)
}

func TestKeyUseCaseWithMetrics_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := keysMocks.NewMockKeyUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		record := &keysDomain.UserKeyRecord{UserID: testUserID}

		mockUseCase.EXPECT().Generate(ctx, testUserID, testPassword).Return(record, nil).Once()
		expectMetrics(mockMetrics, "generate", metrics.StatusSuccess)

		got, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).Generate(ctx, testUserID, testPassword)

		assert.NoError(t, err)
		assert.Same(t, record, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := keysMocks.NewMockKeyUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.EXPECT().
			Generate(ctx, testUserID, testPassword).
			Return(nil, keysDomain.ErrKeysAlreadyExist).
			Once()
		expectMetrics(mockMetrics, "generate", metrics.StatusError)

		_, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).Generate(ctx, testUserID, testPassword)

		assert.ErrorIs(t, err, keysDomain.ErrKeysAlreadyExist)
		mockMetrics.AssertExpectations(t)
	})
}

func TestKeyUseCaseWithMetrics_GetPublicKey(t *testing.T) {
	ctx := context.Background()
	mockUseCase := keysMocks.NewMockKeyUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.EXPECT().GetPublicKey(ctx, testUserID).Return(nil, keysDomain.ErrKeysNotFound).Once()
	expectMetrics(mockMetrics, "get_public_key", metrics.StatusError)

	_, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).GetPublicKey(ctx, testUserID)

	assert.ErrorIs(t, err, keysDomain.ErrKeysNotFound)
	mockMetrics.AssertExpectations(t)
}

func TestKeyUseCaseWithMetrics_RetrievePrivateKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := keysMocks.NewMockKeyUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		keyPair := &keysDomain.KeyPair{PublicKey: []byte("pub"), PrivateKey: []byte("priv")}

		mockUseCase.EXPECT().RetrievePrivateKey(ctx, testUserID, testPassword).Return(keyPair, nil).Once()
		expectMetrics(mockMetrics, "retrieve_private_key", metrics.StatusSuccess)

		got, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).RetrievePrivateKey(ctx, testUserID, testPassword)

		assert.NoError(t, err)
		assert.Same(t, keyPair, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_WrongPasswordRecordsDenied", func(t *testing.T) {
		mockUseCase := keysMocks.NewMockKeyUseCase(t)
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.EXPECT().
			RetrievePrivateKey(ctx, testUserID, "wrong").
			Return(nil, keysDomain.ErrKeyAuthenticationFailed).
			Once()
		expectMetrics(mockMetrics, "retrieve_private_key", metrics.StatusDenied)

		_, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).RetrievePrivateKey(ctx, testUserID, "wrong")

		assert.ErrorIs(t, err, keysDomain.ErrKeyAuthenticationFailed)
		mockMetrics.AssertExpectations(t)
	})
}

func TestKeyUseCaseWithMetrics_Rotate(t *testing.T) {
	ctx := context.Background()
	mockUseCase := keysMocks.NewMockKeyUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	dbErr := errors.New("database error")

	mockUseCase.EXPECT().Rotate(ctx, testUserID, testPassword, testNewPassword).Return(nil, dbErr).Once()
	expectMetrics(mockMetrics, "rotate", metrics.StatusError)

	_, err := NewKeyUseCaseWithMetrics(mockUseCase, mockMetrics).Rotate(ctx, testUserID, testPassword, testNewPassword)

	assert.ErrorIs(t, err, dbErr)
	mockMetrics.AssertExpectations(t)
}
