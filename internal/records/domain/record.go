// Package domain defines the protected-record model: a named mapping whose
// sensitive fields are stored as encrypted envelopes.
package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	appvalidation "github.com/allisson/fieldvault/internal/validation"
)

// MaxRecordNameLength is the maximum allowed length for record names.
// Aligns with the database schema constraint (VARCHAR(255)).
const MaxRecordNameLength = 255

// Record represents a stored record whose protected fields are encrypted at rest.
type Record struct {
	// ID is the unique identifier for this record.
	ID uuid.UUID
	// Name is the logical key used to access the record (e.g., "customer/42/payment").
	Name string
	// Fields holds the record payload. At rest, protected fields contain
	// envelope strings; plaintext values for those fields exist only in
	// mappings returned by the reveal path, never in this persisted form.
	Fields map[string]any
	// CreatedAt is the UTC timestamp when this record was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last field update.
	UpdatedAt time.Time
	// DeletedAt marks when this record was soft-deleted (nil if active).
	DeletedAt *time.Time
}

// Validate checks the record name against the storage constraints.
func (r *Record) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, MaxRecordNameLength),
			appvalidation.NotBlank,
			appvalidation.NoWhitespace,
		),
	)
	return appvalidation.WrapValidationError(err)
}
