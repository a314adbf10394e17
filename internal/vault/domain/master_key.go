package domain

import (
	"encoding/base64"
	"os"
)

// MasterKey represents the symmetric key used for field-level encryption.
//
// The key is the single root of trust for this subsystem: it is loaded once
// from an environment variable at startup, held in memory for the lifetime of
// the protector, and never persisted or logged. There is no rotation state
// machine here; rotating means constructing a new protector with a new key.
//
// Security considerations:
//   - The key must be exactly 32 bytes (256 bits) for AES-256 compatibility
//   - Keys should be generated using cryptographically secure random generators
//   - Call Close when the key is no longer needed to clear it from memory
type MasterKey struct {
	key []byte
}

// NewMasterKey creates a MasterKey from a base64-encoded string.
//
// The value must decode to exactly 32 bytes. Failure modes are distinct so
// operators can diagnose misconfiguration without seeing the key itself:
//
//   - ErrKeyNotSet if encoded is empty
//   - ErrInvalidKeyBase64 if base64 decoding fails
//   - ErrInvalidKeySize if the decoded length is not 32 bytes
//
// The decoded material is copied; the intermediate buffer is zeroed on the
// wrong-size path before returning.
func NewMasterKey(encoded string) (*MasterKey, error) {
	if encoded == "" {
		return nil, ErrKeyNotSet
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidKeyBase64
	}
	if len(key) != KeySize {
		Zero(key)
		return nil, ErrInvalidKeySize
	}

	return &MasterKey{key: key}, nil
}

// LoadMasterKeyFromEnv loads and validates the master key from the named
// environment variable.
//
// The variable must hold a standard base64 encoding of a 32-byte key, for
// example the output of the keygen command:
//
//	VAULT_ENCRYPTION_KEY="GaBW7BYHrYvq0mIeXYxl1msz9V9w7tS4PgLbHjYAVFM="
//
// Absence or malformation is a startup-time fatal configuration error and is
// reported with the same distinct errors as NewMasterKey.
func LoadMasterKeyFromEnv(envName string) (*MasterKey, error) {
	return NewMasterKey(os.Getenv(envName))
}

// Bytes returns the raw key material.
//
// The returned slice aliases the key held by the MasterKey; callers must not
// mutate it and must not retain it past the MasterKey's lifetime.
func (m *MasterKey) Bytes() []byte {
	return m.key
}

// Close securely clears the key material from memory.
// The MasterKey must not be used after Close.
func (m *MasterKey) Close() {
	Zero(m.key)
	m.key = nil
}
