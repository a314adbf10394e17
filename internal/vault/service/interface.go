// Package service provides the field-level encryption engine: AEAD ciphers
// (AES-256-GCM, ChaCha20-Poly1305) and the FieldProtector that applies them
// selectively across named record fields.
package service

import (
	vaultDomain "github.com/allisson/fieldvault/internal/vault/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg vaultDomain.Algorithm) (AEAD, error)
}

// Protector defines the interface for selective field-level encryption of
// structured records. Implementations are pure: input mappings are never
// mutated and no state is kept between calls beyond the immutable key.
type Protector interface {
	// Protect encrypts the protected fields of record and returns a new mapping.
	Protect(record map[string]any) (map[string]any, error)

	// Reveal decrypts the protected fields of record and returns a new mapping.
	Reveal(record map[string]any) (map[string]any, error)

	// EncryptValue encrypts a single value and returns its envelope string.
	EncryptValue(plaintext string) (string, error)

	// DecryptValue decrypts a single envelope string back to its plaintext.
	DecryptValue(encoded string) (string, error)
}
