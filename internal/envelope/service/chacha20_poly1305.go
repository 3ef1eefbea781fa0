package service

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

// ChaCha20Poly1305Cipher implements AEAD using ChaCha20-Poly1305 (RFC 8439).
// Nonce and tag sizes match AES-256-GCM, so records keep the same layout.
type ChaCha20Poly1305Cipher struct {
	detachedAEAD
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher. The key must be exactly envelopeDomain.KeySize bytes.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != envelopeDomain.KeySize {
		return nil, envelopeDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	d, err := newDetachedAEAD(aead)
	if err != nil {
		return nil, err
	}
	return &ChaCha20Poly1305Cipher{detachedAEAD: d}, nil
}
