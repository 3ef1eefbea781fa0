package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
)

// Envelope implements two-layer envelope encryption.
//
// The payload is sealed under a fresh DEK and the DEK is sealed under the master
// key, both with the same AEAD algorithm and independent random nonces. Envelope
// holds no mutable state and is safe for concurrent use.
type Envelope struct {
	keyProvider MasterKeyProvider
	aeadManager AEADManager
	random      RandomSource
	algorithm   envelopeDomain.Algorithm
}

// NewEnvelope creates an Envelope. New records are written with alg.
func NewEnvelope(
	keyProvider MasterKeyProvider,
	aeadManager AEADManager,
	random RandomSource,
	alg envelopeDomain.Algorithm,
) *Envelope {
	return &Envelope{
		keyProvider: keyProvider,
		aeadManager: aeadManager,
		random:      random,
		algorithm:   alg,
	}
}

// Algorithm returns the algorithm written to new records.
func (e *Envelope) Algorithm() envelopeDomain.Algorithm {
	return e.algorithm
}

// Encrypt serializes payload as JSON and seals it into a new SecureRecord.
//
// The plaintext DEK and the master key copy are zeroed before returning. Encrypt
// has no side effects; storing the record is the caller's responsibility.
func (e *Envelope) Encrypt(partyID string, payload any) (*envelopeDomain.SecureRecord, error) {
	masterKey, err := e.keyProvider.MasterKey()
	if err != nil {
		return nil, err
	}
	defer masterKey.Zero()

	dek, err := NewDek(e.random)
	if err != nil {
		return nil, err
	}
	defer envelopeDomain.Zero(dek)

	// Seal the payload with the DEK
	payloadNonce, err := NewNonce(e.random)
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", envelopeDomain.ErrSerialization, err)
	}
	defer envelopeDomain.Zero(plaintext)

	payloadCipher, err := e.aeadManager.CreateCipher(dek, e.algorithm)
	if err != nil {
		return nil, err
	}

	payloadCt, payloadTag, err := payloadCipher.Seal(payloadNonce, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt payload: %w", err)
	}

	// Wrap the DEK with the master key
	wrapNonce, err := NewNonce(e.random)
	if err != nil {
		return nil, err
	}

	wrapCipher, err := e.aeadManager.CreateCipher(masterKey.Key, e.algorithm)
	if err != nil {
		return nil, err
	}

	wrappedDek, wrapTag, err := wrapCipher.Seal(wrapNonce, dek)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap DEK: %w", err)
	}
	envelopeDomain.Zero(dek)

	return &envelopeDomain.SecureRecord{
		ID:                uuid.Must(uuid.NewV7()).String(),
		PartyID:           partyID,
		CreatedAt:         time.Now().UTC(),
		PayloadNonce:      envelopeDomain.ToHex(payloadNonce),
		PayloadCiphertext: envelopeDomain.ToHex(payloadCt),
		PayloadTag:        envelopeDomain.ToHex(payloadTag),
		DekWrapNonce:      envelopeDomain.ToHex(wrapNonce),
		WrappedDek:        envelopeDomain.ToHex(wrappedDek),
		DekWrapTag:        envelopeDomain.ToHex(wrapTag),
		Algorithm:         e.algorithm,
		MasterKeyVersion:  masterKey.Version,
	}, nil
}

// decodedRecord holds the raw binary fields of a SecureRecord.
type decodedRecord struct {
	payloadNonce []byte
	payloadCt    []byte
	payloadTag   []byte
	wrapNonce    []byte
	wrappedDek   []byte
	wrapTag      []byte
}

// Decrypt verifies and opens a SecureRecord and returns the payload JSON exactly
// as it was serialized by Encrypt.
//
// Returns:
//   - configuration errors from the MasterKeyProvider
//   - ErrInvalidEncoding if any binary field is not valid hex
//   - ErrInvalidLength if a nonce is not 12 bytes or a tag is not 16 bytes
//   - ErrUnsupportedAlgorithm if the record names an unknown algorithm
//   - ErrDekUnwrapFailed if the wrapped DEK does not verify (wrong master key or tampering)
//   - ErrPayloadDecryptionFailed if the payload does not verify
//   - ErrDeserialization if the recovered plaintext is not valid JSON
func (e *Envelope) Decrypt(record *envelopeDomain.SecureRecord) (json.RawMessage, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is nil", envelopeDomain.ErrInvalidRecord)
	}

	masterKey, err := e.keyProvider.MasterKey()
	if err != nil {
		return nil, err
	}
	defer masterKey.Zero()

	fields, err := decodeRecord(record)
	if err != nil {
		return nil, err
	}

	if err := validateLengths(fields); err != nil {
		return nil, err
	}

	if record.Algorithm == "" {
		return nil, fmt.Errorf("%w: record has no algorithm", envelopeDomain.ErrUnsupportedAlgorithm)
	}
	alg, err := envelopeDomain.ParseAlgorithm(string(record.Algorithm))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, record.Algorithm)
	}

	// Unwrap the DEK
	wrapCipher, err := e.aeadManager.CreateCipher(masterKey.Key, alg)
	if err != nil {
		return nil, err
	}

	dek, err := wrapCipher.Open(fields.wrapNonce, fields.wrappedDek, fields.wrapTag)
	if err != nil {
		return nil, authenticationError(err, envelopeDomain.ErrDekUnwrapFailed)
	}
	defer envelopeDomain.Zero(dek)

	if len(dek) != envelopeDomain.DEKSize {
		return nil, fmt.Errorf(
			"%w: unwrapped DEK must be %d bytes, got %d",
			envelopeDomain.ErrInvalidLength,
			envelopeDomain.DEKSize,
			len(dek),
		)
	}

	// Open the payload
	payloadCipher, err := e.aeadManager.CreateCipher(dek, alg)
	if err != nil {
		return nil, err
	}

	plaintext, err := payloadCipher.Open(fields.payloadNonce, fields.payloadCt, fields.payloadTag)
	if err != nil {
		return nil, authenticationError(err, envelopeDomain.ErrPayloadDecryptionFailed)
	}

	if !json.Valid(plaintext) {
		envelopeDomain.Zero(plaintext)
		return nil, envelopeDomain.ErrDeserialization
	}

	return json.RawMessage(plaintext), nil
}

// DecryptInto decrypts record and unmarshals the payload into v.
func (e *Envelope) DecryptInto(record *envelopeDomain.SecureRecord, v any) error {
	plaintext, err := e.Decrypt(record)
	if err != nil {
		return err
	}
	defer envelopeDomain.Zero(plaintext)

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %v", envelopeDomain.ErrDeserialization, err)
	}
	return nil
}

// decodeRecord hex-decodes every binary field, naming the first malformed one.
func decodeRecord(record *envelopeDomain.SecureRecord) (decodedRecord, error) {
	var out decodedRecord
	targets := []struct {
		name  string
		value string
		dst   *[]byte
	}{
		{"payload_nonce", record.PayloadNonce, &out.payloadNonce},
		{"payload_ct", record.PayloadCiphertext, &out.payloadCt},
		{"payload_tag", record.PayloadTag, &out.payloadTag},
		{"dek_wrap_nonce", record.DekWrapNonce, &out.wrapNonce},
		{"dek_wrapped", record.WrappedDek, &out.wrappedDek},
		{"dek_wrap_tag", record.DekWrapTag, &out.wrapTag},
	}

	for _, t := range targets {
		b, err := envelopeDomain.FromHex(t.value)
		if err != nil {
			return decodedRecord{}, fmt.Errorf("%s: %w", t.name, err)
		}
		*t.dst = b
	}
	return out, nil
}

func validateLengths(fields decodedRecord) error {
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"payload_nonce", len(fields.payloadNonce), envelopeDomain.NonceSize},
		{"payload_tag", len(fields.payloadTag), envelopeDomain.TagSize},
		{"dek_wrap_nonce", len(fields.wrapNonce), envelopeDomain.NonceSize},
		{"dek_wrap_tag", len(fields.wrapTag), envelopeDomain.TagSize},
	}

	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf(
				"%w: %s must be %d bytes, got %d",
				envelopeDomain.ErrInvalidLength,
				c.name,
				c.want,
				c.got,
			)
		}
	}
	return nil
}

// authenticationError replaces an AEAD verification failure with the
// layer-specific error and passes any other error through unchanged.
func authenticationError(err, layerErr error) error {
	if apperrors.Is(err, envelopeDomain.ErrAuthentication) {
		return layerErr
	}
	return err
}
