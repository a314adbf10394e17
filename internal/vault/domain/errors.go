package domain

import (
	"github.com/allisson/fieldvault/internal/errors"
)

// Vault error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so
// callers can classify failures with errors.Is. The messages are deliberately
// terse: neither format nor integrity errors disclose which byte or field
// caused the failure, to avoid assisting chosen-ciphertext probing.
var (
	// ErrKeyNotSet indicates the master key environment variable is absent or empty.
	//
	// Fatal at startup and operator-actionable: the key must be provisioned
	// before the application can encrypt or decrypt anything.
	ErrKeyNotSet = errors.Wrap(errors.ErrConfiguration, "encryption key not set")

	// ErrInvalidKeyBase64 indicates the master key value is not valid base64.
	ErrInvalidKeyBase64 = errors.Wrap(errors.ErrConfiguration, "encryption key is not valid base64")

	// ErrInvalidKeySize indicates the decoded master key is not exactly 32 bytes.
	//
	// Distinct from ErrInvalidKeyBase64 so operators can tell "wrong size"
	// from "malformed" at a glance.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "encryption key must be 32 bytes")

	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidEnvelope indicates a malformed encrypted envelope (too short to
	// hold a nonce and an authentication tag). This is a data corruption or
	// schema mismatch signal, not a cryptographic failure.
	ErrInvalidEnvelope = errors.Wrap(errors.ErrInvalidInput, "invalid envelope")

	// ErrInvalidEnvelopeBase64 indicates the stored envelope is not valid base64.
	ErrInvalidEnvelopeBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid envelope base64")

	// ErrDecryptionFailed indicates AEAD tag verification failed.
	//
	// Wrong key, corrupted ciphertext, and deliberate tampering are
	// indistinguishable by design and are all reported with this single error.
	// No further detail is ever attached.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrEntropyUnavailable indicates the secure random source failed while
	// generating a nonce. Encryption must not proceed or degrade when this
	// happens; the error is surfaced as fatal.
	ErrEntropyUnavailable = errors.Wrap(errors.ErrUnavailable, "secure random source unavailable")
)
