package usecase

import (
	"context"
	"time"

	"github.com/allisson/fieldvault/internal/metrics"
	recordsDomain "github.com/allisson/fieldvault/internal/records/domain"
)

const metricsDomain = "vault"

// MetricsRecordUseCase decorates a RecordUseCase with business metrics,
// recording operation counts and durations.
type MetricsRecordUseCase struct {
	next            RecordUseCase
	businessMetrics metrics.BusinessMetrics
}

// NewMetricsRecordUseCase creates a metrics decorator around the given use case.
func NewMetricsRecordUseCase(
	next RecordUseCase,
	businessMetrics metrics.BusinessMetrics,
) *MetricsRecordUseCase {
	return &MetricsRecordUseCase{
		next:            next,
		businessMetrics: businessMetrics,
	}
}

// record emits the counter and duration metrics for a finished operation.
func (m *MetricsRecordUseCase) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.businessMetrics.RecordOperation(ctx, metricsDomain, operation, status)
	m.businessMetrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Store delegates to the wrapped use case and records metrics.
func (m *MetricsRecordUseCase) Store(
	ctx context.Context,
	name string,
	fields map[string]any,
) (*recordsDomain.Record, error) {
	start := time.Now()
	record, err := m.next.Store(ctx, name, fields)
	m.record(ctx, "record_store", start, err)
	return record, err
}

// Get delegates to the wrapped use case and records metrics.
func (m *MetricsRecordUseCase) Get(
	ctx context.Context,
	name string,
) (*recordsDomain.Record, error) {
	start := time.Now()
	record, err := m.next.Get(ctx, name)
	m.record(ctx, "record_get", start, err)
	return record, err
}

// GetSealed delegates to the wrapped use case and records metrics.
func (m *MetricsRecordUseCase) GetSealed(
	ctx context.Context,
	name string,
) (*recordsDomain.Record, error) {
	start := time.Now()
	record, err := m.next.GetSealed(ctx, name)
	m.record(ctx, "record_get_sealed", start, err)
	return record, err
}

// Delete delegates to the wrapped use case and records metrics.
func (m *MetricsRecordUseCase) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := m.next.Delete(ctx, name)
	m.record(ctx, "record_delete", start, err)
	return err
}
