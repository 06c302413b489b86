package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestAEADManager_CreateCipher(t *testing.T) {
	manager := NewAEADManager()

	t.Run("aes-gcm", func(t *testing.T) {
		c, err := manager.CreateCipher(randomKey(t), cryptoDomain.AESGCM)
		require.NoError(t, err)
		assert.IsType(t, &AESGCMCipher{}, c)
	})

	t.Run("chacha20-poly1305", func(t *testing.T) {
		c, err := manager.CreateCipher(randomKey(t), cryptoDomain.ChaCha20)
		require.NoError(t, err)
		assert.IsType(t, &ChaCha20Poly1305Cipher{}, c)
	})

	t.Run("invalid key size", func(t *testing.T) {
		_, err := manager.CreateCipher(make([]byte, 16), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(randomKey(t), "des")
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}

func TestAEAD_Ciphers(t *testing.T) {
	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			cipher, err := NewAEADManager().CreateCipher(randomKey(t), alg)
			require.NoError(t, err)

			plaintext := []byte("private key material")
			aad := []byte("user-1:1")

			t.Run("round trip", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				assert.Len(t, nonce, 12)
				assert.NotEqual(t, plaintext, ciphertext)

				decrypted, err := cipher.Decrypt(ciphertext, nonce, aad)
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			})

			t.Run("nonce is unique for each encryption", func(t *testing.T) {
				seen := make(map[string]bool)
				for range 100 {
					ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
					require.NoError(t, err)
					assert.False(t, seen[string(nonce)])
					seen[string(nonce)] = true
					assert.NotEmpty(t, ciphertext)
				}
			})

			t.Run("same plaintext yields different ciphertexts", func(t *testing.T) {
				c1, _, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				c2, _, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				assert.NotEqual(t, c1, c2)
			})

			t.Run("tampered ciphertext fails", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				ciphertext[0] ^= 0x01

				_, err = cipher.Decrypt(ciphertext, nonce, aad)
				assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			})

			t.Run("tampered nonce fails", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)
				nonce[0] ^= 0x01

				_, err = cipher.Decrypt(ciphertext, nonce, aad)
				assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			})

			t.Run("truncated nonce fails without panic", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)

				_, err = cipher.Decrypt(ciphertext, nonce[:4], aad)
				assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			})

			t.Run("wrong aad fails", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)

				_, err = cipher.Decrypt(ciphertext, nonce, []byte("user-2:1"))
				assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			})

			t.Run("wrong key fails", func(t *testing.T) {
				ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
				require.NoError(t, err)

				other, err := NewAEADManager().CreateCipher(randomKey(t), alg)
				require.NoError(t, err)

				_, err = other.Decrypt(ciphertext, nonce, aad)
				assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			})
		})
	}
}

func TestNewCiphers_InvalidKey(t *testing.T) {
	_, err := NewAESGCM(make([]byte, 31))
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)

	_, err = NewChaCha20Poly1305(make([]byte, 64))
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
}
