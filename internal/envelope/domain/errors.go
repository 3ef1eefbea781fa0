package domain

import (
	"github.com/allisson/sealbox/internal/errors"
)

// Envelope error taxonomy.
//
// Every error below wraps one of the standard kinds from internal/errors so the
// HTTP layer can map it with errors.Is. Callers that need the precise failure
// class test against the class errors (ErrInvalidEncoding, ErrInvalidLength,
// ErrAuthentication, ErrDeserialization) or the configuration kind.
var (
	// ErrMasterKeyNotSet indicates no master key is configured.
	ErrMasterKeyNotSet = errors.Wrap(errors.ErrConfiguration, "master key not set")

	// ErrMasterKeyEncoding indicates the configured master key is not valid hexadecimal.
	ErrMasterKeyEncoding = errors.Wrap(errors.ErrConfiguration, "master key is not valid hex")

	// ErrMasterKeyLength indicates the decoded master key is not exactly 32 bytes.
	ErrMasterKeyLength = errors.Wrap(errors.ErrConfiguration, "master key must be 32 bytes")

	// ErrMasterKeyDecryption indicates the KMS could not decrypt the configured master key.
	ErrMasterKeyDecryption = errors.Wrap(errors.ErrConfiguration, "master key KMS decryption failed")

	// ErrInvalidEncoding indicates a field is not valid hexadecimal.
	ErrInvalidEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid hex encoding")

	// ErrInvalidLength indicates a decoded binary field has the wrong byte length.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid length")

	// ErrInvalidKeySize indicates a cipher key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(ErrInvalidLength, "invalid key size")

	// ErrAuthentication indicates AEAD verification failed.
	//
	// Tampered ciphertext, tampered tags, a tampered wrapped key and a wrong master
	// key all collapse into this error.
	ErrAuthentication = errors.Wrap(errors.ErrInvalidInput, "authentication failed")

	// ErrDekUnwrapFailed indicates the wrapped DEK did not verify under the master key.
	ErrDekUnwrapFailed = errors.Wrap(ErrAuthentication, "DEK unwrap failed")

	// ErrPayloadDecryptionFailed indicates the payload did not verify under the DEK.
	ErrPayloadDecryptionFailed = errors.Wrap(ErrAuthentication, "payload decryption failed")

	// ErrSerialization indicates the payload could not be encoded as JSON.
	ErrSerialization = errors.Wrap(errors.ErrInvalidInput, "payload serialization failed")

	// ErrDeserialization indicates recovered plaintext is not valid JSON.
	ErrDeserialization = errors.Wrap(errors.ErrInvalidInput, "payload deserialization failed")

	// ErrInvalidRecord indicates a record is missing or structurally unusable.
	ErrInvalidRecord = errors.Wrap(errors.ErrInvalidInput, "invalid record")

	// ErrUnsupportedAlgorithm indicates the record names an unknown AEAD scheme.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")
)
