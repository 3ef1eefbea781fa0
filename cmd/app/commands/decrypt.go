package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
)

// RunDecrypt opens a secure record and writes its JSON payload followed by a
// newline. The record JSON comes from the record argument, or from the reader
// when the argument is empty.
func RunDecrypt(
	ctx context.Context,
	envelope recordsUseCase.RecordEnvelope,
	logger *slog.Logger,
	ioTuple IOTuple,
	recordJSON string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := readInput(recordJSON, ioTuple.Reader)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "record is required")
	}

	var record envelopeDomain.SecureRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "record must be a JSON object")
	}

	payload, err := envelope.Decrypt(&record)
	if err != nil {
		return fmt.Errorf("failed to decrypt record: %w", err)
	}
	defer envelopeDomain.Zero(payload)

	logger.Info("record decrypted", slog.String("id", record.ID))

	if _, err := fmt.Fprintf(ioTuple.Writer, "%s\n", payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}
