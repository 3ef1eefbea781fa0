// Package domain defines the envelope encryption data model.
//
// A payload is sealed under a single-use data encryption key (DEK), the DEK is
// sealed under the master key, and everything needed to reverse both steps is
// carried by a SecureRecord in hex-encoded form.
package domain

import (
	"time"
)

// SecureRecord is the self-describing result of envelope encryption.
//
// The plaintext DEK is never part of the record. Records are treated as
// immutable once constructed.
type SecureRecord struct {
	ID        string    `json:"id"`        // UUIDv7, assigned at creation
	PartyID   string    `json:"partyId"`   // Opaque caller label, not used cryptographically
	CreatedAt time.Time `json:"createdAt"` // Informational only

	PayloadNonce      string `json:"payload_nonce"` // 12 bytes
	PayloadCiphertext string `json:"payload_ct"`    // Same length as the serialized payload
	PayloadTag        string `json:"payload_tag"`   // 16 bytes

	DekWrapNonce string `json:"dek_wrap_nonce"` // 12 bytes
	WrappedDek   string `json:"dek_wrapped"`    // 32 bytes
	DekWrapTag   string `json:"dek_wrap_tag"`   // 16 bytes

	Algorithm        Algorithm `json:"alg"`
	MasterKeyVersion uint      `json:"mk_version"`
}

// MasterKey is the long-lived key that wraps DEKs.
type MasterKey struct {
	Version uint
	Key     []byte
}
