package commands

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	vaultDomain "github.com/allisson/legacyvault/internal/offlinevault/domain"
	vaultMocks "github.com/allisson/legacyvault/internal/offlinevault/usecase/mocks"
)

func TestRunCreateDeviceKey(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		key := newDeviceKey(t)
		encoded := hex.EncodeToString(key)
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)
		keyStore.EXPECT().LoadOrCreate(mock.Anything).Return(key, nil).Once()

		var out bytes.Buffer
		err := RunCreateDeviceKey(ctx, keyStore, newTestLogger(), &out, "/var/lib/vault.key", "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Device key ready at /var/lib/vault.key (64 bytes")
		assert.NotContains(t, out.String(), encoded)
		assert.Equal(t, make([]byte, vaultDomain.VaultKeySize), key)
	})

	t.Run("json-output", func(t *testing.T) {
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)
		keyStore.EXPECT().LoadOrCreate(mock.Anything).Return(newDeviceKey(t), nil).Once()

		var out bytes.Buffer
		err := RunCreateDeviceKey(ctx, keyStore, newTestLogger(), &out, "vault.key", "json")

		require.NoError(t, err)
		assert.JSONEq(t, `{"path":"vault.key","key_size":64}`, out.String())
	})

	t.Run("key-store-error", func(t *testing.T) {
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)
		keyStore.EXPECT().LoadOrCreate(mock.Anything).Return(nil, vaultDomain.ErrDeviceKeyUnavailable).Once()

		err := RunCreateDeviceKey(ctx, keyStore, newTestLogger(), &bytes.Buffer{}, "vault.key", "text")
		assert.ErrorIs(t, err, vaultDomain.ErrDeviceKeyUnavailable)
	})

	t.Run("invalid-format", func(t *testing.T) {
		keyStore := vaultMocks.NewMockDeviceKeyStore(t)

		err := RunCreateDeviceKey(ctx, keyStore, newTestLogger(), &bytes.Buffer{}, "vault.key", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}
