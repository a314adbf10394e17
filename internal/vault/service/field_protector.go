package service

import (
	"fmt"

	apperrors "github.com/allisson/fieldvault/internal/errors"
	vaultDomain "github.com/allisson/fieldvault/internal/vault/domain"
)

// FieldProtector applies authenticated encryption selectively across named
// fields of a structured record.
//
// The protected fields form an explicit, enumerated allow-list bound at
// construction. Field names are never inferred from naming heuristics: a field
// is encrypted if and only if it is on the list. Each protected value gets its
// own fresh nonce and envelope, so decrypting one field never requires or
// affects another.
//
// Protect and Reveal are pure functions: the input mapping is never mutated
// and a new mapping is returned. The protector holds no state beyond the
// immutable cipher, so it is safe for concurrent use without locking. It
// should be constructed once by the application's startup sequence and passed
// to whoever needs it; there is no ambient global instance.
type FieldProtector struct {
	aead   AEAD
	fields map[string]struct{}
}

// NewFieldProtector creates a FieldProtector for the given master key,
// algorithm, and protected-field allow-list.
//
// The master key is used as-is (no derivation); it must already be a validated
// 32-byte key. Returns ErrInvalidKeySize or ErrUnsupportedAlgorithm if the
// cipher cannot be constructed.
func NewFieldProtector(
	masterKey *vaultDomain.MasterKey,
	alg vaultDomain.Algorithm,
	protectedFields []string,
	aeadManager AEADManager,
) (*FieldProtector, error) {
	aead, err := aeadManager.CreateCipher(masterKey.Bytes(), alg)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]struct{}, len(protectedFields))
	for _, f := range protectedFields {
		fields[f] = struct{}{}
	}

	return &FieldProtector{aead: aead, fields: fields}, nil
}

// ProtectedFields returns the configured protected-field names.
func (p *FieldProtector) ProtectedFields() []string {
	names := make([]string, 0, len(p.fields))
	for f := range p.fields {
		names = append(names, f)
	}
	return names
}

// EncryptValue encrypts a single value and returns its envelope string:
// base64(nonce || ciphertext+tag).
//
// The plaintext may be empty; an empty string still produces a full envelope
// so "empty but present" survives a round trip.
func (p *FieldProtector) EncryptValue(plaintext string) (string, error) {
	ciphertext, nonce, err := p.aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", err
	}

	env := vaultDomain.Envelope{Nonce: nonce, Ciphertext: ciphertext}
	return env.String(), nil
}

// DecryptValue decrypts an envelope string produced by EncryptValue back to
// its plaintext.
//
// Returns ErrInvalidEnvelopeBase64 or ErrInvalidEnvelope for malformed input
// and ErrDecryptionFailed when tag verification fails.
func (p *FieldProtector) DecryptValue(encoded string) (string, error) {
	env, err := vaultDomain.NewEnvelope(encoded)
	if err != nil {
		return "", err
	}

	plaintext, err := p.aead.Decrypt(env.Ciphertext, env.Nonce, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// Protect encrypts the protected fields of record and returns a new mapping.
//
// For each key in record: if the key is on the allow-list and the value is
// non-nil, the value is converted to its string form, encrypted, and stored
// under the same key as an envelope string. Everything else passes through
// unchanged. Nil values for protected fields pass through as nil, never
// encrypted into an envelope representing an empty string, so callers can
// distinguish "no value" from "empty but present" after a round trip.
func (p *FieldProtector) Protect(record map[string]any) (map[string]any, error) {
	protected := make(map[string]any, len(record))

	for field, value := range record {
		if _, ok := p.fields[field]; !ok || value == nil {
			protected[field] = value
			continue
		}

		encrypted, err := p.EncryptValue(stringify(value))
		if err != nil {
			return nil, apperrors.Wrapf(err, "protect field %q", field)
		}
		protected[field] = encrypted
	}

	return protected, nil
}

// Reveal decrypts the protected fields of record and returns a new mapping.
//
// The inverse of Protect: each protected field present with a non-nil value is
// parsed as an envelope and decrypted back to its plaintext string. The first
// field that fails format or integrity checks aborts the whole reveal
// (a partially revealed record is a worse footgun than a clear failure).
// The error names the failing field but carries no positional detail beyond
// that.
func (p *FieldProtector) Reveal(record map[string]any) (map[string]any, error) {
	revealed := make(map[string]any, len(record))

	for field, value := range record {
		if _, ok := p.fields[field]; !ok || value == nil {
			revealed[field] = value
			continue
		}

		encoded, ok := value.(string)
		if !ok {
			return nil, apperrors.Wrapf(vaultDomain.ErrInvalidEnvelope, "reveal field %q", field)
		}

		plaintext, err := p.DecryptValue(encoded)
		if err != nil {
			return nil, apperrors.Wrapf(err, "reveal field %q", field)
		}
		revealed[field] = plaintext
	}

	return revealed, nil
}

// stringify converts a protected value to the string form that gets encrypted.
// Strings pass through as-is; other scalar types use their default formatting.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
