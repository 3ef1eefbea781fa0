package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/allisson/sealbox/internal/errors"
	recordsDomain "github.com/allisson/sealbox/internal/records/domain"
	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
)

// RunEncrypt seals a JSON payload into a secure record and writes the record as
// indented JSON. The payload comes from the payload argument, or from the reader
// when the argument is empty. Nothing is stored.
func RunEncrypt(
	ctx context.Context,
	envelope recordsUseCase.RecordEnvelope,
	logger *slog.Logger,
	ioTuple IOTuple,
	partyID, payload string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(partyID) == "" {
		return recordsDomain.ErrInvalidPartyID
	}

	data, err := readInput(payload, ioTuple.Reader)
	if err != nil {
		return err
	}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return recordsDomain.ErrInvalidPayload
	}
	if !json.Valid(data) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "payload must be valid JSON")
	}

	record, err := envelope.Encrypt(partyID, json.RawMessage(data))
	if err != nil {
		return fmt.Errorf("failed to encrypt payload: %w", err)
	}

	logger.Info("record encrypted",
		slog.String("id", record.ID),
		slog.String("party_id", record.PartyID),
		slog.String("alg", string(record.Algorithm)))

	encoder := json.NewEncoder(ioTuple.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}
