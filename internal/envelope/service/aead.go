package service

import (
	"crypto/cipher"
	"fmt"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

// detachedAEAD adapts a cipher.AEAD, which appends the tag to the ciphertext,
// to the detached ciphertext/tag pair carried by a SecureRecord.
type detachedAEAD struct {
	aead cipher.AEAD
}

func newDetachedAEAD(aead cipher.AEAD) (detachedAEAD, error) {
	if aead.NonceSize() != envelopeDomain.NonceSize || aead.Overhead() != envelopeDomain.TagSize {
		return detachedAEAD{}, fmt.Errorf(
			"unexpected AEAD parameters: nonce %d bytes, tag %d bytes",
			aead.NonceSize(),
			aead.Overhead(),
		)
	}
	return detachedAEAD{aead: aead}, nil
}

func (d detachedAEAD) Seal(nonce, plaintext []byte) ([]byte, []byte, error) {
	if len(nonce) != envelopeDomain.NonceSize {
		return nil, nil, fmt.Errorf(
			"%w: nonce must be %d bytes, got %d",
			envelopeDomain.ErrInvalidLength,
			envelopeDomain.NonceSize,
			len(nonce),
		)
	}

	sealed := d.aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - envelopeDomain.TagSize
	return sealed[:split:split], sealed[split:], nil
}

func (d detachedAEAD) Open(nonce, ciphertext, tag []byte) ([]byte, error) {
	if len(nonce) != envelopeDomain.NonceSize {
		return nil, fmt.Errorf(
			"%w: nonce must be %d bytes, got %d",
			envelopeDomain.ErrInvalidLength,
			envelopeDomain.NonceSize,
			len(nonce),
		)
	}
	if len(tag) != envelopeDomain.TagSize {
		return nil, fmt.Errorf(
			"%w: tag must be %d bytes, got %d",
			envelopeDomain.ErrInvalidLength,
			envelopeDomain.TagSize,
			len(tag),
		)
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := d.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, envelopeDomain.ErrAuthentication
	}
	return plaintext, nil
}
