package app

import (
	"fmt"

	"github.com/allisson/sealbox/internal/metrics"
	recordsHTTP "github.com/allisson/sealbox/internal/records/http"
	recordsRepository "github.com/allisson/sealbox/internal/records/repository"
	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
)

// RecordRepository returns the in-memory record store.
func (c *Container) RecordRepository() (*recordsRepository.MemoryRecordRepository, error) {
	var err error
	c.recordRepositoryInit.Do(func() {
		c.recordRepository, err = c.initRecordRepository()
		if err != nil {
			c.initErrors["recordRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordRepository"]; exists {
		return nil, storedErr
	}
	return c.recordRepository, nil
}

// RecordUseCase returns the record use case, wrapped with business metrics.
func (c *Container) RecordUseCase() (recordsUseCase.RecordUseCase, error) {
	var err error
	c.recordUseCaseInit.Do(func() {
		c.recordUseCase, err = c.initRecordUseCase()
		if err != nil {
			c.initErrors["recordUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordUseCase"]; exists {
		return nil, storedErr
	}
	return c.recordUseCase, nil
}

// RecordHandler returns the HTTP handler for record endpoints.
func (c *Container) RecordHandler() (*recordsHTTP.RecordHandler, error) {
	var err error
	c.recordHandlerInit.Do(func() {
		c.recordHandler, err = c.initRecordHandler()
		if err != nil {
			c.initErrors["recordHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordHandler"]; exists {
		return nil, storedErr
	}
	return c.recordHandler, nil
}

// initRecordRepository creates the record store and, when metrics are enabled,
// exposes its size as a gauge.
func (c *Container) initRecordRepository() (*recordsRepository.MemoryRecordRepository, error) {
	repo := recordsRepository.NewMemoryRecordRepository()

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for record repository: %w", err)
	}
	if provider == nil {
		return repo, nil
	}

	registration, err := metrics.RegisterStoredRecordsGauge(
		provider.MeterProvider(),
		c.config.MetricsNamespace,
		repo,
	)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.storedGauge = registration
	c.mu.Unlock()
	return repo, nil
}

// initRecordUseCase creates the record use case.
func (c *Container) initRecordUseCase() (recordsUseCase.RecordUseCase, error) {
	envelope, err := c.Envelope()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope for record use case: %w", err)
	}

	repo, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for record use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for record use case: %w", err)
	}

	useCase := recordsUseCase.NewRecordUseCase(envelope, repo)
	return recordsUseCase.NewRecordUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initRecordHandler creates the record HTTP handler.
func (c *Container) initRecordHandler() (*recordsHTTP.RecordHandler, error) {
	useCase, err := c.RecordUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get record use case for record handler: %w", err)
	}
	return recordsHTTP.NewRecordHandler(useCase, c.Logger()), nil
}
