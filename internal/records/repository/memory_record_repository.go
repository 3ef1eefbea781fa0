// Package repository implements record persistence.
// Records are kept in process memory and are lost when the process exits.
package repository

import (
	"context"
	"sync"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
)

// MemoryRecordRepository stores SecureRecords in a map keyed by record id.
// Records are copied on the way in and out so callers cannot mutate stored state.
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[string]envelopeDomain.SecureRecord
}

// NewMemoryRecordRepository creates an empty in-memory record repository.
func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records: make(map[string]envelopeDomain.SecureRecord),
	}
}

// Put stores a record. Returns ErrRecordAlreadyExists if the id is taken.
func (m *MemoryRecordRepository) Put(ctx context.Context, record *envelopeDomain.SecureRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if record == nil || record.ID == "" {
		return apperrors.Wrap(envelopeDomain.ErrInvalidRecord, "failed to store record")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; ok {
		return recordsDomain.ErrRecordAlreadyExists
	}
	m.records[record.ID] = *record
	return nil
}

// Get returns a copy of the record stored under id.
func (m *MemoryRecordRepository) Get(ctx context.Context, id string) (*envelopeDomain.SecureRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	record, ok := m.records[id]
	m.mu.RUnlock()

	if !ok {
		return nil, recordsDomain.ErrRecordNotFound
	}
	return &record, nil
}

// Len returns the number of stored records.
func (m *MemoryRecordRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
