package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

// AESGCMCipher implements AEAD using AES-256-GCM with a 12-byte nonce and a
// 16-byte tag. It is stateless and safe for concurrent use.
type AESGCMCipher struct {
	detachedAEAD
}

// NewAESGCM creates a new AES-256-GCM cipher. The key must be exactly
// envelopeDomain.KeySize bytes; shorter AES keys are rejected.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != envelopeDomain.KeySize {
		return nil, envelopeDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	d, err := newDetachedAEAD(aead)
	if err != nil {
		return nil, err
	}
	return &AESGCMCipher{detachedAEAD: d}, nil
}
