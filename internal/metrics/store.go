package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// RecordCounter reports how many records are currently stored.
type RecordCounter interface {
	Len() int
}

// RegisterStoredRecordsGauge exposes counter.Len() as an observable gauge that is
// read on every scrape.
func RegisterStoredRecordsGauge(
	meterProvider metric.MeterProvider,
	namespace string,
	counter RecordCounter,
) (metric.Registration, error) {
	meter := meterProvider.Meter(namespace)

	gauge, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_stored_records", namespace),
		metric.WithDescription("Number of records held by the record store"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create stored records gauge: %w", err)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(gauge, int64(counter.Len()))
		return nil
	}, gauge)
	if err != nil {
		return nil, fmt.Errorf("failed to register stored records callback: %w", err)
	}
	return registration, nil
}
