// Package usecase implements the business logic for protected records:
// storing records with their sensitive fields sealed, retrieving them
// revealed or sealed, and soft deleting them.
package usecase

import (
	"context"

	"github.com/google/uuid"

	recordsDomain "github.com/allisson/fieldvault/internal/records/domain"
)

// RecordRepository defines the interface for record data access.
type RecordRepository interface {
	// Create inserts a new record.
	Create(ctx context.Context, record *recordsDomain.Record) error

	// Update replaces the fields of an existing record.
	Update(ctx context.Context, record *recordsDomain.Record) error

	// GetByName retrieves the active record with the given name.
	GetByName(ctx context.Context, name string) (*recordsDomain.Record, error)

	// Delete performs a soft delete on a record.
	Delete(ctx context.Context, recordID uuid.UUID) error
}

// RecordUseCase defines the interface for record business operations.
type RecordUseCase interface {
	// Store seals the protected fields of a record and persists it, creating
	// the record or replacing the fields of an existing one with the same name.
	Store(ctx context.Context, name string, fields map[string]any) (*recordsDomain.Record, error)

	// Get retrieves a record by name with its protected fields revealed.
	Get(ctx context.Context, name string) (*recordsDomain.Record, error)

	// GetSealed retrieves a record by name with its protected fields still sealed.
	GetSealed(ctx context.Context, name string) (*recordsDomain.Record, error)

	// Delete performs a soft delete on the record with the given name.
	Delete(ctx context.Context, name string) error
}
