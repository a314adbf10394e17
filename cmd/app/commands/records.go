package commands

import (
	"context"
	"fmt"
	"log/slog"

	recordsUsecase "github.com/allisson/fieldvault/internal/records/usecase"
)

// RunStoreRecord reads a JSON record from inputPath (or stdin) and stores it
// under the given name, sealing its protected fields before persistence.
func RunStoreRecord(
	ctx context.Context,
	useCase recordsUsecase.RecordUseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
	name, inputPath string,
) error {
	fields, err := readRecord(ioTuple, inputPath)
	if err != nil {
		return err
	}

	record, err := useCase.Store(ctx, name, fields)
	if err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}

	logger.Info("record stored",
		slog.String("record_id", record.ID.String()),
		slog.String("record_name", record.Name),
	)
	return nil
}

// RunGetRecord retrieves a record by name and writes it as JSON. With sealed
// set, the protected fields are written as stored envelopes instead of being
// decrypted.
func RunGetRecord(
	ctx context.Context,
	useCase recordsUsecase.RecordUseCase,
	ioTuple IOTuple,
	name string,
	sealed bool,
) error {
	get := useCase.Get
	if sealed {
		get = useCase.GetSealed
	}

	record, err := get(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	return writeRecord(ioTuple.Writer, record.Fields)
}

// RunDeleteRecord soft deletes the record with the given name.
func RunDeleteRecord(
	ctx context.Context,
	useCase recordsUsecase.RecordUseCase,
	logger *slog.Logger,
	name string,
) error {
	if err := useCase.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	logger.Info("record deleted", slog.String("record_name", name))
	return nil
}
