package domain

// Algorithm identifies the AEAD scheme used for both envelope layers.
//
// Both supported algorithms use a 256-bit key, a 96-bit nonce and a 128-bit
// authentication tag, so records produced with either share the same layout.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM. This is the default algorithm.
	AESGCM Algorithm = "AES-256-GCM"

	// ChaCha20 represents ChaCha20-Poly1305 (RFC 8439), for hosts without AES-NI.
	ChaCha20 Algorithm = "CHACHA20-POLY1305"
)

// Byte lengths every envelope component validates against.
const (
	// NonceSize is the length of every AEAD nonce (96 bits).
	NonceSize = 12

	// TagSize is the length of every AEAD authentication tag (128 bits).
	TagSize = 16

	// KeySize is the key length both supported algorithms require (256 bits).
	KeySize = 32

	// DEKSize is the length of a data encryption key.
	DEKSize = KeySize

	// MasterKeySize is the length of the master key. The master key seals DEKs
	// with the same cipher, so it shares the cipher key length.
	MasterKeySize = KeySize
)

// MasterKeyVersion is the static version tag written to every record.
const MasterKeyVersion uint = 1

// ParseAlgorithm returns the Algorithm named by s.
// An empty string selects AESGCM.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "", AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
