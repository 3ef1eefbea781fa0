package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	envelopeService "github.com/allisson/sealbox/internal/envelope/service"
)

// RunCreateMasterKey generates a cryptographically secure 32-byte master key and
// prints the environment variables that configure it. Key material is zeroed
// from memory after encoding.
//
// Without KMS parameters the key is printed as plain hex in MASTER_KEY. With both
// kmsProvider and kmsKeyURI the key is encrypted by the KMS first and MASTER_KEY
// holds the hex-encoded KMS ciphertext. For local development, use
// kmsProvider="localsecrets" with kmsKeyURI="base64key://...".
//
// Output format:
//   - MASTER_KEY="<hex>"
//   - KMS_PROVIDER="<provider>" (KMS mode only)
//   - KMS_KEY_URI="<uri>" (KMS mode only)
func RunCreateMasterKey(
	ctx context.Context,
	kmsService envelopeService.KMSService,
	random envelopeService.RandomSource,
	logger *slog.Logger,
	writer io.Writer,
	kmsProvider, kmsKeyURI string,
) error {
	if (kmsProvider == "") != (kmsKeyURI == "") {
		return fmt.Errorf(
			"--kms-provider and --kms-key-uri are required together\n\nFor local development, use:\n  --kms-provider=localsecrets --kms-key-uri=\"base64key://<32-byte-base64-key>\"\n\nFor production, use cloud KMS providers:\n  --kms-provider=gcpkms --kms-key-uri=\"gcpkms://projects/.../cryptoKeys/...\"\n  --kms-provider=awskms --kms-key-uri=\"awskms:///alias/...\"",
		)
	}

	masterKey, err := random.Bytes(envelopeDomain.MasterKeySize)
	if err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	defer envelopeDomain.Zero(masterKey)

	if kmsProvider == "" {
		logger.Warn("generated a plain master key, prefer a KMS provider outside development")

		_, _ = fmt.Fprintln(writer, "# Master Key Configuration")
		_, _ = fmt.Fprintln(writer, "# Copy this environment variable to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "MASTER_KEY=\"%s\"\n", envelopeDomain.ToHex(masterKey))
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Error("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, masterKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt master key with KMS: %w", err)
	}

	logger.Info("master key encrypted with KMS", slog.String("kms_provider", kmsProvider))

	_, _ = fmt.Fprintln(writer, "# Master Key Configuration (KMS Mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_PROVIDER=\"%s\"\n", kmsProvider)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "MASTER_KEY=\"%s\"\n", envelopeDomain.ToHex(ciphertext))
	return nil
}
