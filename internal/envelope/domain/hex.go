package domain

import (
	"encoding/hex"

	"github.com/allisson/sealbox/internal/errors"
)

// ToHex encodes b as lowercase hexadecimal.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hexadecimal string. Both cases are accepted.
// Returns ErrInvalidEncoding for odd length input or any non-hex character.
func FromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidEncoding, "odd length %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEncoding, "%v", err)
	}
	return b, nil
}
