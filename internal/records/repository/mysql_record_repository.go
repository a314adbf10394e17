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

// MySQLRecordRepository implements Record persistence for MySQL databases.
type MySQLRecordRepository struct {
	db *sql.DB
}

// NewMySQLRecordRepository creates a new MySQL Record repository instance.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{db: db}
}

// Create inserts a new record into the MySQL database.
func (m *MySQLRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, m.db)

	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record fields")
	}

	query := `INSERT INTO records (id, name, fields, created_at, updated_at, deleted_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		record.ID.String(),
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
func (m *MySQLRecordRepository) Update(ctx context.Context, record *recordsDomain.Record) error {
	querier := database.GetTx(ctx, m.db)

	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record fields")
	}

	query := `UPDATE records
			  SET fields = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, fields, record.UpdatedAt, record.ID.String())
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
func (m *MySQLRecordRepository) GetByName(
	ctx context.Context,
	name string,
) (*recordsDomain.Record, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, fields, created_at, updated_at, deleted_at
			  FROM records
			  WHERE name = ? AND deleted_at IS NULL
			  LIMIT 1`

	var record recordsDomain.Record
	var id string
	var fields []byte
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&id,
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

	record.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse record id")
	}

	if err := json.Unmarshal(fields, &record.Fields); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal record fields")
	}

	return &record, nil
}

// Delete performs a soft delete on a record by setting the DeletedAt timestamp.
func (m *MySQLRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE records
			  SET deleted_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	_, err := querier.ExecContext(ctx, query, time.Now().UTC(), recordID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete record")
	}

	return nil
}
