package service

import (
	"crypto/rand"
	"fmt"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

type cryptoRandom struct{}

// NewCryptoRandom returns a RandomSource backed by crypto/rand.
func NewCryptoRandom() RandomSource {
	return cryptoRandom{}
}

func (cryptoRandom) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// NewNonce draws a fresh 12-byte nonce from src.
func NewNonce(src RandomSource) ([]byte, error) {
	return draw(src, envelopeDomain.NonceSize, "nonce")
}

// NewDek draws a fresh 32-byte data encryption key from src.
func NewDek(src RandomSource) ([]byte, error) {
	return draw(src, envelopeDomain.DEKSize, "DEK")
}

func draw(src RandomSource, n int, what string) ([]byte, error) {
	b, err := src.Bytes(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", what, err)
	}
	if len(b) != n {
		envelopeDomain.Zero(b)
		return nil, fmt.Errorf("failed to generate %s: got %d bytes, want %d", what, len(b), n)
	}
	return b, nil
}
