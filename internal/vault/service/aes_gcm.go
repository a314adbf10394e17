package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	vaultDomain "github.com/allisson/fieldvault/internal/vault/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// AES-GCM provides authenticated encryption with associated data (AEAD), combining
// the confidentiality of AES encryption with the authenticity of GMAC. This
// implementation uses AES-256 with a 256-bit key.
//
// Security properties:
//   - 256-bit key size
//   - 12-byte nonce (96 bits, randomly generated per encryption)
//   - 16-byte authentication tag (128 bits, appended to ciphertext)
//   - Authenticated encryption prevents tampering and forgery
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from multiple
//	goroutines. Each encryption operation generates a unique nonce independently.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes (256 bits) for AES-256; any other length
// returns ErrInvalidKeySize. Keys should be generated using crypto/rand for
// cryptographic security.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != vaultDomain.KeySize {
		return nil, vaultDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, vaultDomain.ErrInvalidKeySize
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		// cipher.NewGCM cannot fail for a well-formed AES block; treat any
		// failure as an unavailable crypto facility rather than degrading.
		return nil, vaultDomain.ErrEntropyUnavailable
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using AES-256-GCM with optional additional authenticated data.
//
// The AAD (Additional Authenticated Data) is authenticated but not encrypted,
// allowing ciphertext to be bound to additional context without encrypting it.
// Pass nil for AAD if no additional data needs to be authenticated; the field
// protector always does.
//
// A unique 12-byte nonce is randomly generated for each encryption operation
// using crypto/rand. The nonce must be stored alongside the ciphertext for
// later decryption. With GCM, it's critical that nonces are never reused with
// the same key; per-call secure random generation satisfies that obligation.
//
// The returned ciphertext includes the 16-byte authentication tag appended to
// the end. The only error path is a failing random source, reported as
// ErrEntropyUnavailable and never retried here: if secure randomness is
// unavailable, encryption must not silently degrade.
func (a *AESGCMCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, vaultDomain.ErrEntropyUnavailable
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt decrypts ciphertext using AES-256-GCM with the provided nonce and AAD.
//
// This method verifies the authentication tag before returning plaintext,
// ensuring the ciphertext hasn't been tampered with. If verification fails no
// plaintext is returned and the failure is reported as ErrDecryptionFailed.
// A wrong key, corrupted data, and deliberate tampering are deliberately
// indistinguishable; the underlying library's error text is discarded so no
// detail useful for cryptanalysis crosses this boundary.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, vaultDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
