package app

import (
	"context"
	"fmt"
	"log/slog"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	envelopeService "github.com/allisson/sealbox/internal/envelope/service"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() envelopeService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = c.initKMSService()
	})
	return c.kmsService
}

// MasterKeyProvider returns the master key provider.
//
// Invalid key material does not fail here: the provider reports the error on
// every use so encrypt and decrypt calls fail with a configuration error and the
// readiness check reports not ready. Failing to reach the KMS is returned.
func (c *Container) MasterKeyProvider() (envelopeService.MasterKeyProvider, error) {
	var err error
	c.masterKeyProviderInit.Do(func() {
		c.masterKeyProvider, err = c.initMasterKeyProvider()
		if err != nil {
			c.initErrors["masterKeyProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterKeyProvider"]; exists {
		return nil, storedErr
	}
	return c.masterKeyProvider, nil
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() envelopeService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = c.initAEADManager()
	})
	return c.aeadManager
}

// Envelope returns the envelope encryptor configured with ENVELOPE_ALGORITHM.
func (c *Container) Envelope() (*envelopeService.Envelope, error) {
	var err error
	c.envelopeInit.Do(func() {
		c.envelope, err = c.initEnvelope()
		if err != nil {
			c.initErrors["envelope"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelope"]; exists {
		return nil, storedErr
	}
	return c.envelope, nil
}

// initKMSService creates the KMS service for decrypting the master key.
func (c *Container) initKMSService() envelopeService.KMSService {
	return envelopeService.NewKMSService()
}

// initMasterKeyProvider resolves the master key from MASTER_KEY, decrypting it
// through KMS_KEY_URI when a KMS provider is configured.
func (c *Container) initMasterKeyProvider() (envelopeService.MasterKeyProvider, error) {
	logger := c.Logger()

	var provider envelopeService.MasterKeyProvider
	if c.config.UsesKMS() {
		ctx := context.Background()

		keeper, err := c.KMSService().OpenKeeper(ctx, c.config.KMSKeyURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open KMS keeper for master key: %w", err)
		}
		defer func() {
			if closeErr := keeper.Close(); closeErr != nil {
				logger.Error("failed to close KMS keeper", slog.Any("error", closeErr))
			}
		}()

		provider = envelopeService.NewKMSMasterKeyProvider(ctx, keeper, c.config.MasterKey)
	} else {
		provider = envelopeService.NewStaticMasterKeyProvider(c.config.MasterKey)
	}

	// Surface misconfiguration at startup as well as on every request
	masterKey, err := provider.MasterKey()
	if err != nil {
		logger.Error("master key is not usable, encrypt and decrypt will fail",
			slog.Bool("kms", c.config.UsesKMS()),
			slog.Any("error", err))
		return provider, nil
	}
	version := masterKey.Version
	masterKey.Zero()

	logger.Info("master key loaded",
		slog.Bool("kms", c.config.UsesKMS()),
		slog.Uint64("version", uint64(version)))
	return provider, nil
}

// initAEADManager creates the AEAD manager service.
func (c *Container) initAEADManager() envelopeService.AEADManager {
	return envelopeService.NewAEADManager()
}

// initEnvelope creates the envelope encryptor with a crypto/rand source.
func (c *Container) initEnvelope() (*envelopeService.Envelope, error) {
	alg, err := envelopeDomain.ParseAlgorithm(c.config.EnvelopeAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid envelope algorithm %q: %w", c.config.EnvelopeAlgorithm, err)
	}

	keyProvider, err := c.MasterKeyProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key provider for envelope: %w", err)
	}

	return envelopeService.NewEnvelope(
		keyProvider,
		c.AEADManager(),
		envelopeService.NewCryptoRandom(),
		alg,
	), nil
}
