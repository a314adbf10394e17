// Package repository implements data persistence for protected records.
// Repositories support both PostgreSQL and MySQL with soft deletion; record
// fields are persisted as a JSON document whose protected entries hold
// encrypted envelopes.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/fieldvault/internal/database"
	apperrors "github.com/allisson/fieldvault/internal/errors"
	recordsDomain "github.com/allisson/fieldvault/internal/records/domain"
)

// PostgreSQLRecordRepository implements Record persistence for PostgreSQL databases.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL Record repository instance.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{db: db}
}

// Create inserts a new record into the PostgreSQL database.
func (p *PostgreSQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, p.db)

	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record fields")
	}

	query := `INSERT INTO records (id, name, fields, created_at, updated_at, deleted_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.Name,
		fields,
		record.CreatedAt,
		record.UpdatedAt,
		record.DeletedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create record")
	}
	return nil
}

// Update replaces the fields of an existing record and bumps its update timestamp.
func (p *PostgreSQLRecordRepository) Update(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, p.db)

	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record fields")
	}

	query := `UPDATE records
			  SET fields = $1, updated_at = $2
			  WHERE id = $3 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, fields, record.UpdatedAt, record.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update record")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if affected == 0 {
		return recordsDomain.ErrRecordNotFound
	}
	return nil
}

// GetByName retrieves the active record with the given name.
func (p *PostgreSQLRecordRepository) GetByName(
	ctx context.Context,
	name string,
) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, fields, created_at, updated_at, deleted_at
			  FROM records
			  WHERE name = $1 AND deleted_at IS NULL
			  LIMIT 1`

	var record recordsDomain.Record
	var fields []byte
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&record.ID,
		&record.Name,
		&fields,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recordsDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record by name")
	}

	if err := json.Unmarshal(fields, &record.Fields); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal record fields")
	}

	return &record, nil
}

// Delete performs a soft delete on a record by setting the DeletedAt timestamp.
func (p *PostgreSQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE records
			  SET deleted_at = $1
			  WHERE id = $2 AND deleted_at IS NULL`

	_, err := querier.ExecContext(ctx, query, time.Now().UTC(), recordID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete record")
	}

	return nil
}
