package usecase

import (
	"context"
	"encoding/json"
	"time"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
	"github.com/allisson/sealbox/internal/metrics"
)

// recordUseCaseWithMetrics decorates RecordUseCase with metrics instrumentation.
type recordUseCaseWithMetrics struct {
	next    RecordUseCase
	metrics metrics.BusinessMetrics
}

// NewRecordUseCaseWithMetrics wraps a RecordUseCase with metrics recording.
func NewRecordUseCaseWithMetrics(useCase RecordUseCase, m metrics.BusinessMetrics) RecordUseCase {
	return &recordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for record encryption operations.
func (r *recordUseCaseWithMetrics) Create(
	ctx context.Context,
	partyID string,
	payload json.RawMessage,
) (*envelopeDomain.SecureRecord, error) {
	start := time.Now()
	record, err := r.next.Create(ctx, partyID, payload)

	r.record(ctx, "record_encrypt", start, err)

	return record, err
}

// Get records metrics for record retrieval operations.
func (r *recordUseCaseWithMetrics) Get(ctx context.Context, id string) (*envelopeDomain.SecureRecord, error) {
	start := time.Now()
	record, err := r.next.Get(ctx, id)

	r.record(ctx, "record_get", start, err)

	return record, err
}

// Decrypt records metrics for record decryption operations.
func (r *recordUseCaseWithMetrics) Decrypt(ctx context.Context, id string) (json.RawMessage, error) {
	start := time.Now()
	payload, err := r.next.Decrypt(ctx, id)

	r.record(ctx, "record_decrypt", start, err)

	return payload, err
}

func (r *recordUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := statusFor(err)

	r.metrics.RecordOperation(ctx, "records", operation, status)
	r.metrics.RecordDuration(ctx, "records", operation, time.Since(start), status)
}

// statusFor maps an operation result to a low-cardinality status label.
// The failing envelope layer is kept so operators can tell a wrong master key
// from a tampered payload.
func statusFor(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.Is(err, envelopeDomain.ErrDekUnwrapFailed):
		return "dek_unwrap_failed"
	case apperrors.Is(err, envelopeDomain.ErrPayloadDecryptionFailed):
		return "payload_auth_failed"
	case apperrors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case apperrors.Is(err, apperrors.ErrConflict):
		return "conflict"
	case apperrors.Is(err, apperrors.ErrConfiguration):
		return "configuration_error"
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
