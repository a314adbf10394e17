package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recordsDomain "github.com/allisson/fieldvault/internal/records/domain"
)

func TestNewMySQLRecordRepository(t *testing.T) {
	db, _ := newMockDB(t)

	repo := NewMySQLRecordRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLRecordRepository{}, repo)
}

func TestMySQLRecordRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLRecordRepository(db)
	record := testRecord(t)

	fields, err := json.Marshal(record.Fields)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO records`)).
		WithArgs(record.ID.String(), record.Name, fields, record.CreatedAt, record.UpdatedAt, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), record)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRecordRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLRecordRepository(db)
	record := testRecord(t)

	t.Run("updates existing record", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE records`)).
			WithArgs(sqlmock.AnyArg(), record.UpdatedAt, record.ID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), record)
		require.NoError(t, err)
	})

	t.Run("missing record returns not found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE records`)).
			WithArgs(sqlmock.AnyArg(), record.UpdatedAt, record.ID.String()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), record)
		assert.ErrorIs(t, err, recordsDomain.ErrRecordNotFound)
	})
}

func TestMySQLRecordRepository_GetByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLRecordRepository(db)
	record := testRecord(t)

	t.Run("returns active record", func(t *testing.T) {
		fields, err := json.Marshal(record.Fields)
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"id", "name", "fields", "created_at", "updated_at", "deleted_at"}).
			AddRow(record.ID.String(), record.Name, fields, record.CreatedAt, record.UpdatedAt, nil)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, fields, created_at, updated_at, deleted_at`)).
			WithArgs(record.Name).
			WillReturnRows(rows)

		got, err := repo.GetByName(context.Background(), record.Name)
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, record.Fields, got.Fields)
	})

	t.Run("missing record returns not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, fields, created_at, updated_at, deleted_at`)).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "fields", "created_at", "updated_at", "deleted_at"}))

		_, err := repo.GetByName(context.Background(), "missing")
		assert.ErrorIs(t, err, recordsDomain.ErrRecordNotFound)
	})

	t.Run("malformed id column fails parse", func(t *testing.T) {
		fields, err := json.Marshal(record.Fields)
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"id", "name", "fields", "created_at", "updated_at", "deleted_at"}).
			AddRow("not-a-uuid", record.Name, fields, record.CreatedAt, record.UpdatedAt, nil)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, fields, created_at, updated_at, deleted_at`)).
			WithArgs(record.Name).
			WillReturnRows(rows)

		_, err = repo.GetByName(context.Background(), record.Name)
		assert.Error(t, err)
	})
}

func TestMySQLRecordRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLRecordRepository(db)
	recordID := uuid.Must(uuid.NewV7())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE records`)).
		WithArgs(sqlmock.AnyArg(), recordID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), recordID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
