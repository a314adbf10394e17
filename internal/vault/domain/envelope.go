package domain

import (
	"encoding/base64"
)

// Envelope is the atomic unit of stored ciphertext: a nonce paired with the
// ciphertext produced under it. The ciphertext already includes the AEAD
// authentication tag appended by the cipher.
//
// The wire form is a single base64 string of nonce || ciphertext+tag, so the
// nonce can never be separated from or mismatched with its ciphertext in
// storage. An envelope is meaningless without its paired nonce.
type Envelope struct {
	Nonce      []byte
	Ciphertext []byte
}

// NewEnvelope parses an Envelope from its stored string representation.
//
// The input must be standard base64 of at least NonceSize+TagSize (28) bytes:
// a 12-byte nonce followed by a ciphertext that includes the 16-byte tag.
// Anything shorter is a format error, not a cryptographic one.
//
// Returns:
//   - ErrInvalidEnvelopeBase64 if base64 decoding fails
//   - ErrInvalidEnvelope if the decoded payload is too short
//
// Neither error carries positional detail; a truncated or corrupted store is
// reported identically regardless of where the damage is.
func NewEnvelope(encoded string) (Envelope, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Envelope{}, ErrInvalidEnvelopeBase64
	}
	if len(raw) < NonceSize+TagSize {
		return Envelope{}, ErrInvalidEnvelope
	}

	return Envelope{
		Nonce:      raw[:NonceSize],
		Ciphertext: raw[NonceSize:],
	}, nil
}

// String serializes the Envelope to its stored string representation:
// base64(nonce || ciphertext+tag).
//
// Round-trip fidelity with NewEnvelope holds for any envelope produced by the
// cipher layer:
//
//	parsed, _ := NewEnvelope(env.String())
//	// parsed equals env
func (e Envelope) String() string {
	raw := make([]byte, 0, len(e.Nonce)+len(e.Ciphertext))
	raw = append(raw, e.Nonce...)
	raw = append(raw, e.Ciphertext...)
	return base64.StdEncoding.EncodeToString(raw)
}
