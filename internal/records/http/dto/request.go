// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/json"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/sealbox/internal/validation"
)

const (
	maxPartyIDLength = 256
	maxPayloadBytes  = 1 << 20
)

// EncryptRequest contains the parameters for encrypting a payload.
// Payload is kept as raw JSON so the original key order is preserved.
type EncryptRequest struct {
	PartyID string          `json:"partyId"`
	Payload json.RawMessage `json:"payload"`
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PartyID,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, maxPartyIDLength),
		),
		validation.Field(&r.Payload,
			customValidation.JSONValue,
			validation.Length(0, maxPayloadBytes),
		),
	)
}
