package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/fieldvault/internal/database"
	apperrors "github.com/allisson/fieldvault/internal/errors"
	recordsDomain "github.com/allisson/fieldvault/internal/records/domain"
	vaultService "github.com/allisson/fieldvault/internal/vault/service"
)

// RecordUseCaseService implements record business operations on top of the
// field protector and the record repository.
type RecordUseCaseService struct {
	recordRepository RecordRepository
	protector        vaultService.Protector
	txManager        database.TxManager
	logger           *slog.Logger
}

// NewRecordUseCaseService creates a new record use case service instance.
func NewRecordUseCaseService(
	recordRepository RecordRepository,
	protector vaultService.Protector,
	txManager database.TxManager,
	logger *slog.Logger,
) *RecordUseCaseService {
	return &RecordUseCaseService{
		recordRepository: recordRepository,
		protector:        protector,
		txManager:        txManager,
		logger:           logger,
	}
}

// Store seals the protected fields of the given mapping and persists it under
// name. If an active record with that name exists its fields are replaced,
// otherwise a new record is created.
func (r *RecordUseCaseService) Store(
	ctx context.Context,
	name string,
	fields map[string]any,
) (*recordsDomain.Record, error) {
	now := time.Now().UTC()
	record := &recordsDomain.Record{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Fields:    fields,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	sealed, err := r.protector.Protect(fields)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to seal record fields")
	}
	record.Fields = sealed

	err = r.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := r.recordRepository.GetByName(ctx, name)
		switch {
		case err == nil:
			record.ID = existing.ID
			record.CreatedAt = existing.CreatedAt
			return r.recordRepository.Update(ctx, record)
		case errors.Is(err, recordsDomain.ErrRecordNotFound):
			return r.recordRepository.Create(ctx, record)
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "record stored",
		slog.String("record_id", record.ID.String()),
		slog.String("record_name", record.Name),
	)
	return record, nil
}

// Get retrieves a record by name and reveals its protected fields.
func (r *RecordUseCaseService) Get(
	ctx context.Context,
	name string,
) (*recordsDomain.Record, error) {
	record, err := r.recordRepository.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	revealed, err := r.protector.Reveal(record.Fields)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to reveal record fields")
	}
	record.Fields = revealed

	return record, nil
}

// GetSealed retrieves a record by name without revealing its protected
// fields. The returned mapping holds the stored envelopes.
func (r *RecordUseCaseService) GetSealed(
	ctx context.Context,
	name string,
) (*recordsDomain.Record, error) {
	return r.recordRepository.GetByName(ctx, name)
}

// Delete performs a soft delete on the record with the given name.
func (r *RecordUseCaseService) Delete(ctx context.Context, name string) error {
	record, err := r.recordRepository.GetByName(ctx, name)
	if err != nil {
		return err
	}

	if err := r.recordRepository.Delete(ctx, record.ID); err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "record deleted",
		slog.String("record_id", record.ID.String()),
		slog.String("record_name", record.Name),
	)
	return nil
}
