// Package usecase defines the interfaces and implementations for record use cases.
// Use cases orchestrate the envelope encryptor and the record repository.
package usecase

import (
	"context"
	"encoding/json"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

// RecordRepository defines the interface for SecureRecord persistence operations.
type RecordRepository interface {
	Put(ctx context.Context, record *envelopeDomain.SecureRecord) error
	Get(ctx context.Context, id string) (*envelopeDomain.SecureRecord, error)
}

// RecordEnvelope defines the envelope encryption operations used by the use case.
type RecordEnvelope interface {
	Encrypt(partyID string, payload any) (*envelopeDomain.SecureRecord, error)
	Decrypt(record *envelopeDomain.SecureRecord) (json.RawMessage, error)
}

// RecordUseCase defines the interface for record business logic.
type RecordUseCase interface {
	// Create encrypts payload for partyID and stores the resulting record.
	Create(ctx context.Context, partyID string, payload json.RawMessage) (*envelopeDomain.SecureRecord, error)
	// Get returns a stored record without decrypting it.
	Get(ctx context.Context, id string) (*envelopeDomain.SecureRecord, error)
	// Decrypt loads a stored record and returns its payload.
	//
	// Security Note: The returned payload is plaintext. Callers SHOULD zero it after use
	// by calling envelopeDomain.Zero(payload).
	Decrypt(ctx context.Context, id string) (json.RawMessage, error)
}
