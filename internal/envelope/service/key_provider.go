package service

import (
	"context"
	"fmt"
	"strings"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

// staticMasterKeyProvider serves a master key resolved once from configuration.
// A resolution error is kept and returned on every call so misconfiguration is
// enforced per request as well as detectable at startup.
type staticMasterKeyProvider struct {
	version uint
	key     []byte
	err     error
}

// NewStaticMasterKeyProvider creates a provider from the 64-character hex secret
// configured in MASTER_KEY.
func NewStaticMasterKeyProvider(hexKey string) MasterKeyProvider {
	key, err := ParseMasterKey(hexKey)
	return &staticMasterKeyProvider{
		version: envelopeDomain.MasterKeyVersion,
		key:     key,
		err:     err,
	}
}

// NewKMSMasterKeyProvider creates a provider from a master key that was encrypted
// with a KMS keeper. ciphertextHex is the hex encoding of the KMS ciphertext. The
// key is decrypted once; the keeper is not retained.
func NewKMSMasterKeyProvider(ctx context.Context, keeper KMSKeeper, ciphertextHex string) MasterKeyProvider {
	p := &staticMasterKeyProvider{version: envelopeDomain.MasterKeyVersion}

	ciphertextHex = strings.TrimSpace(ciphertextHex)
	if ciphertextHex == "" {
		p.err = envelopeDomain.ErrMasterKeyNotSet
		return p
	}

	ciphertext, err := envelopeDomain.FromHex(ciphertextHex)
	if err != nil {
		p.err = envelopeDomain.ErrMasterKeyEncoding
		return p
	}

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		p.err = fmt.Errorf("%w: %v", envelopeDomain.ErrMasterKeyDecryption, err)
		return p
	}

	if len(key) != envelopeDomain.MasterKeySize {
		envelopeDomain.Zero(key)
		p.err = fmt.Errorf("%w, got %d", envelopeDomain.ErrMasterKeyLength, len(key))
		return p
	}

	p.key = key
	return p
}

// MasterKey returns a copy of the configured master key.
func (p *staticMasterKeyProvider) MasterKey() (*envelopeDomain.MasterKey, error) {
	if p.err != nil {
		return nil, p.err
	}

	key := make([]byte, len(p.key))
	copy(key, p.key)
	return &envelopeDomain.MasterKey{Version: p.version, Key: key}, nil
}

// ParseMasterKey decodes and validates a hex-encoded master key.
//
// Returns:
//   - ErrMasterKeyNotSet if hexKey is empty
//   - ErrMasterKeyEncoding if hexKey is not valid hexadecimal
//   - ErrMasterKeyLength if the decoded key is not exactly 32 bytes
func ParseMasterKey(hexKey string) ([]byte, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return nil, envelopeDomain.ErrMasterKeyNotSet
	}

	key, err := envelopeDomain.FromHex(hexKey)
	if err != nil {
		return nil, envelopeDomain.ErrMasterKeyEncoding
	}

	if len(key) != envelopeDomain.MasterKeySize {
		envelopeDomain.Zero(key)
		return nil, fmt.Errorf("%w, got %d", envelopeDomain.ErrMasterKeyLength, len(key))
	}

	return key, nil
}
