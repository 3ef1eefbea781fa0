// Package domain defines the errors of the record store and use cases.
//
// Records themselves are envelope SecureRecords; this package only adds the
// failure kinds that come from storing and looking them up.
package domain

import (
	"github.com/allisson/sealbox/internal/errors"
)

var (
	// ErrRecordNotFound indicates no record is stored under the requested id.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrRecordAlreadyExists indicates a record with the same id is already stored.
	ErrRecordAlreadyExists = errors.Wrap(errors.ErrConflict, "record already exists")

	// ErrInvalidPartyID indicates the party label is empty or blank.
	ErrInvalidPartyID = errors.Wrap(errors.ErrInvalidInput, "partyId is required")

	// ErrInvalidPayload indicates the payload is missing or JSON null.
	ErrInvalidPayload = errors.Wrap(errors.ErrInvalidInput, "payload is required")
)
