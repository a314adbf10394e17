package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vaultDomain "github.com/allisson/fieldvault/internal/vault/domain"
)

func TestNewAEADManager(t *testing.T) {
	manager := NewAEADManager()
	assert.NotNil(t, manager)
}

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	validKey := newTestKey(t)

	t.Run("create AES-GCM cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, vaultDomain.AESGCM)
		require.NoError(t, err)
		assert.NotNil(t, cipher)

		// Verify cipher is of the correct type
		_, ok := cipher.(*AESGCMCipher)
		assert.True(t, ok, "cipher should be of type *AESGCMCipher")
	})

	t.Run("create ChaCha20-Poly1305 cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(validKey, vaultDomain.ChaCha20)
		require.NoError(t, err)
		assert.NotNil(t, cipher)

		// Verify cipher is of the correct type
		_, ok := cipher.(*ChaCha20Poly1305Cipher)
		assert.True(t, ok, "cipher should be of type *ChaCha20Poly1305Cipher")
	})

	t.Run("create cipher with unsupported algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(validKey, vaultDomain.Algorithm("unsupported"))
		assert.ErrorIs(t, err, vaultDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("create cipher with invalid key size - too short", func(t *testing.T) {
		_, err := manager.CreateCipher(make([]byte, 16), vaultDomain.AESGCM)
		assert.ErrorIs(t, err, vaultDomain.ErrInvalidKeySize)
	})

	t.Run("create cipher with invalid key size - too long", func(t *testing.T) {
		_, err := manager.CreateCipher(make([]byte, 64), vaultDomain.AESGCM)
		assert.ErrorIs(t, err, vaultDomain.ErrInvalidKeySize)
	})

	t.Run("create cipher with nil key", func(t *testing.T) {
		_, err := manager.CreateCipher(nil, vaultDomain.AESGCM)
		assert.ErrorIs(t, err, vaultDomain.ErrInvalidKeySize)
	})
}

func TestAEADManagerService_CiphersAreIndependent(t *testing.T) {
	manager := NewAEADManager()

	key1 := newTestKey(t)
	key2 := newTestKey(t)

	cipher1, err := manager.CreateCipher(key1, vaultDomain.AESGCM)
	require.NoError(t, err)
	cipher2, err := manager.CreateCipher(key2, vaultDomain.AESGCM)
	require.NoError(t, err)

	ciphertext, nonce, err := cipher1.Encrypt([]byte("secret"), nil)
	require.NoError(t, err)

	_, err = cipher2.Decrypt(ciphertext, nonce, nil)
	assert.ErrorIs(t, err, vaultDomain.ErrDecryptionFailed)
}
