// Package service implements the envelope encryption engine: random material,
// the AEAD primitive, master key providers and the Envelope encryptor/decryptor.
package service

import (
	"context"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

// AEAD seals and opens data with a detached authentication tag and no associated data.
type AEAD interface {
	// Seal encrypts plaintext under nonce. The ciphertext has the same length as the
	// plaintext and the tag is always envelopeDomain.TagSize bytes.
	Seal(nonce, plaintext []byte) (ciphertext, tag []byte, err error)

	// Open verifies tag and decrypts ciphertext. No plaintext is returned on failure.
	Open(nonce, ciphertext, tag []byte) ([]byte, error)
}

// AEADManager creates AEAD instances for a key and algorithm.
type AEADManager interface {
	CreateCipher(key []byte, alg envelopeDomain.Algorithm) (AEAD, error)
}

// RandomSource produces cryptographically secure random bytes.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	Bytes(n int) ([]byte, error)
}

// MasterKeyProvider resolves the master key used to wrap DEKs.
//
// Every call returns a fresh copy of the key material which the caller owns and
// should zero after use. Implementations must be safe for concurrent use.
type MasterKeyProvider interface {
	MasterKey() (*envelopeDomain.MasterKey, error)
}

// KMSKeeper is the subset of *secrets.Keeper used to protect the master key.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens KMS keepers from gocloud.dev key URIs.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}
