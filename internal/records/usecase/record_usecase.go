package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

// recordUseCase implements the RecordUseCase interface.
type recordUseCase struct {
	envelope   RecordEnvelope
	recordRepo RecordRepository
}

// Create encrypts payload and persists the new record.
func (r *recordUseCase) Create(
	ctx context.Context,
	partyID string,
	payload json.RawMessage,
) (*envelopeDomain.SecureRecord, error) {
	if strings.TrimSpace(partyID) == "" {
		return nil, recordsDomain.ErrInvalidPartyID
	}
	if isAbsent(payload) {
		return nil, recordsDomain.ErrInvalidPayload
	}

	record, err := r.envelope.Encrypt(partyID, payload)
	if err != nil {
		return nil, err
	}

	if err := r.recordRepo.Put(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get retrieves a stored record by id.
func (r *recordUseCase) Get(ctx context.Context, id string) (*envelopeDomain.SecureRecord, error) {
	return r.recordRepo.Get(ctx, id)
}

// Decrypt retrieves a stored record and opens its payload.
func (r *recordUseCase) Decrypt(ctx context.Context, id string) (json.RawMessage, error) {
	record, err := r.recordRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.envelope.Decrypt(record)
}

func isAbsent(payload json.RawMessage) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// NewRecordUseCase creates a new record use case instance with the provided dependencies.
func NewRecordUseCase(envelope RecordEnvelope, recordRepo RecordRepository) RecordUseCase {
	return &recordUseCase{
		envelope:   envelope,
		recordRepo: recordRepo,
	}
}
