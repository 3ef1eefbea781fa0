// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/json"
	"time"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
)

// RecordResponse is the wire form of a SecureRecord.
type RecordResponse struct {
	ID                string    `json:"id"`
	PartyID           string    `json:"partyId"`
	CreatedAt         time.Time `json:"createdAt"`
	PayloadNonce      string    `json:"payload_nonce"`
	PayloadCiphertext string    `json:"payload_ct"`
	PayloadTag        string    `json:"payload_tag"`
	DekWrapNonce      string    `json:"dek_wrap_nonce"`
	WrappedDek        string    `json:"dek_wrapped"`
	DekWrapTag        string    `json:"dek_wrap_tag"`
	Algorithm         string    `json:"alg"`
	MasterKeyVersion  uint      `json:"mk_version"`
}

// MapRecordToResponse converts a SecureRecord to an API response.
func MapRecordToResponse(record *envelopeDomain.SecureRecord) RecordResponse {
	return RecordResponse{
		ID:                record.ID,
		PartyID:           record.PartyID,
		CreatedAt:         record.CreatedAt,
		PayloadNonce:      record.PayloadNonce,
		PayloadCiphertext: record.PayloadCiphertext,
		PayloadTag:        record.PayloadTag,
		DekWrapNonce:      record.DekWrapNonce,
		WrappedDek:        record.WrappedDek,
		DekWrapTag:        record.DekWrapTag,
		Algorithm:         string(record.Algorithm),
		MasterKeyVersion:  record.MasterKeyVersion,
	}
}

// DecryptResponse carries a decrypted payload.
// SECURITY: Payload is plaintext and must only be transmitted over HTTPS in production.
type DecryptResponse struct {
	Payload json.RawMessage `json:"payload"`
}
