package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/fieldvault/internal/errors"
	recordsDomain "github.com/allisson/fieldvault/internal/records/domain"
	vaultDomain "github.com/allisson/fieldvault/internal/vault/domain"
	vaultService "github.com/allisson/fieldvault/internal/vault/service"
)

// fakeRecordRepository is an in-memory RecordRepository keyed by record name.
type fakeRecordRepository struct {
	records map[string]*recordsDomain.Record
}

func newFakeRecordRepository() *fakeRecordRepository {
	return &fakeRecordRepository{records: make(map[string]*recordsDomain.Record)}
}

func (f *fakeRecordRepository) Create(ctx context.Context, record *recordsDomain.Record) error {
	if _, ok := f.records[record.Name]; ok {
		return recordsDomain.ErrRecordAlreadyExists
	}
	clone := *record
	f.records[record.Name] = &clone
	return nil
}

func (f *fakeRecordRepository) Update(ctx context.Context, record *recordsDomain.Record) error {
	if _, ok := f.records[record.Name]; !ok {
		return recordsDomain.ErrRecordNotFound
	}
	clone := *record
	f.records[record.Name] = &clone
	return nil
}

func (f *fakeRecordRepository) GetByName(ctx context.Context, name string) (*recordsDomain.Record, error) {
	record, ok := f.records[name]
	if !ok {
		return nil, recordsDomain.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (f *fakeRecordRepository) Delete(ctx context.Context, recordID uuid.UUID) error {
	for name, record := range f.records {
		if record.ID == recordID {
			delete(f.records, name)
			return nil
		}
	}
	return recordsDomain.ErrRecordNotFound
}

// fakeTxManager runs the function without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestProtector(t *testing.T, protectedFields []string) vaultService.Protector {
	t.Helper()

	raw := make([]byte, vaultDomain.KeySize)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	masterKey, err := vaultDomain.NewMasterKey(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)

	protector, err := vaultService.NewFieldProtector(
		masterKey,
		vaultDomain.AESGCM,
		protectedFields,
		vaultService.NewAEADManager(),
	)
	require.NoError(t, err)
	return protector
}

func newTestUseCase(t *testing.T) (*RecordUseCaseService, *fakeRecordRepository) {
	t.Helper()

	repo := newFakeRecordRepository()
	protector := newTestProtector(t, []string{"card_number", "api_key"})
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewRecordUseCaseService(repo, protector, &fakeTxManager{}, logger), repo
}

func TestRecordUseCaseService_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("creates record with sealed fields", func(t *testing.T) {
		useCase, repo := newTestUseCase(t)

		fields := map[string]any{
			"name":        "Alice",
			"card_number": "4242424242424242",
		}

		record, err := useCase.Store(ctx, "customer/42/payment", fields)
		require.NoError(t, err)
		assert.Equal(t, "customer/42/payment", record.Name)

		stored := repo.records["customer/42/payment"]
		require.NotNil(t, stored)
		assert.Equal(t, "Alice", stored.Fields["name"])
		assert.NotEqual(t, "4242424242424242", stored.Fields["card_number"])
	})

	t.Run("replaces fields of existing record keeping identity", func(t *testing.T) {
		useCase, repo := newTestUseCase(t)

		first, err := useCase.Store(ctx, "customer/42/payment", map[string]any{"card_number": "4242424242424242"})
		require.NoError(t, err)

		second, err := useCase.Store(ctx, "customer/42/payment", map[string]any{"card_number": "5555555555554444"})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)
		assert.Len(t, repo.records, 1)
	})

	t.Run("rejects invalid name", func(t *testing.T) {
		useCase, repo := newTestUseCase(t)

		_, err := useCase.Store(ctx, "  ", map[string]any{"card_number": "4242424242424242"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Empty(t, repo.records)
	})

	t.Run("does not mutate the input mapping", func(t *testing.T) {
		useCase, _ := newTestUseCase(t)

		fields := map[string]any{"card_number": "4242424242424242"}
		_, err := useCase.Store(ctx, "customer/42/payment", fields)
		require.NoError(t, err)
		assert.Equal(t, "4242424242424242", fields["card_number"])
	})
}

func TestRecordUseCaseService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("reveals protected fields", func(t *testing.T) {
		useCase, _ := newTestUseCase(t)

		fields := map[string]any{
			"name":        "Alice",
			"card_number": "4242424242424242",
			"api_key":     nil,
		}
		_, err := useCase.Store(ctx, "customer/42/payment", fields)
		require.NoError(t, err)

		record, err := useCase.Get(ctx, "customer/42/payment")
		require.NoError(t, err)
		assert.Equal(t, "Alice", record.Fields["name"])
		assert.Equal(t, "4242424242424242", record.Fields["card_number"])
		assert.Nil(t, record.Fields["api_key"])
	})

	t.Run("missing record returns not found", func(t *testing.T) {
		useCase, _ := newTestUseCase(t)

		_, err := useCase.Get(ctx, "missing")
		assert.ErrorIs(t, err, recordsDomain.ErrRecordNotFound)
	})

	t.Run("tampered envelope fails integrity check", func(t *testing.T) {
		useCase, repo := newTestUseCase(t)

		_, err := useCase.Store(ctx, "customer/42/payment", map[string]any{"card_number": "4242424242424242"})
		require.NoError(t, err)

		stored := repo.records["customer/42/payment"]
		stored.Fields["card_number"] = 12345

		_, err = useCase.Get(ctx, "customer/42/payment")
		assert.ErrorIs(t, err, vaultDomain.ErrInvalidEnvelope)
	})
}

func TestRecordUseCaseService_GetSealed(t *testing.T) {
	ctx := context.Background()
	useCase, _ := newTestUseCase(t)

	_, err := useCase.Store(ctx, "customer/42/payment", map[string]any{
		"name":        "Alice",
		"card_number": "4242424242424242",
	})
	require.NoError(t, err)

	record, err := useCase.GetSealed(ctx, "customer/42/payment")
	require.NoError(t, err)
	assert.Equal(t, "Alice", record.Fields["name"])
	assert.NotEqual(t, "4242424242424242", record.Fields["card_number"])
	assert.IsType(t, "", record.Fields["card_number"])
}

func TestRecordUseCaseService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes stored record", func(t *testing.T) {
		useCase, _ := newTestUseCase(t)

		_, err := useCase.Store(ctx, "customer/42/payment", map[string]any{"card_number": "4242424242424242"})
		require.NoError(t, err)

		err = useCase.Delete(ctx, "customer/42/payment")
		require.NoError(t, err)

		_, err = useCase.Get(ctx, "customer/42/payment")
		assert.ErrorIs(t, err, recordsDomain.ErrRecordNotFound)
	})

	t.Run("missing record returns not found", func(t *testing.T) {
		useCase, _ := newTestUseCase(t)

		err := useCase.Delete(ctx, "missing")
		assert.ErrorIs(t, err, recordsDomain.ErrRecordNotFound)
	})
}
