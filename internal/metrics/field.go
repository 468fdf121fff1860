package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// FieldMetrics records the operations served by the field engine.
//
// operation names the engine call ("apply_edit", "validate", "validate_form", ...), kind
// the field kind it applied to (or the catalog table for listing calls) and status the
// outcome: the resulting validation status, "rejected" for refused edits, "success" for
// calls without a state, or "error".
type FieldMetrics interface {
	RecordOperation(ctx context.Context, operation, kind, status string)
	RecordDuration(ctx context.Context, operation, kind string, duration time.Duration, status string)
}

type fieldMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewFieldMetrics creates FieldMetrics backed by OpenTelemetry instruments named after
// namespace.
func NewFieldMetrics(meterProvider metric.MeterProvider, namespace string) (FieldMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_field_operations_total", namespace),
		metric.WithDescription("Total number of field engine operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_field_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of field engine operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &fieldMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

func fieldAttributes(operation, kind, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("kind", kind),
		attribute.String("status", status),
	)
}

func (f *fieldMetrics) RecordOperation(ctx context.Context, operation, kind, status string) {
	f.operationCounter.Add(ctx, 1, fieldAttributes(operation, kind, status))
}

func (f *fieldMetrics) RecordDuration(
	ctx context.Context,
	operation, kind string,
	duration time.Duration,
	status string,
) {
	f.durationHisto.Record(ctx, duration.Seconds(), fieldAttributes(operation, kind, status))
}

// NoOpFieldMetrics discards every measurement. It is used when metrics are disabled.
type NoOpFieldMetrics struct{}

// NewNoOpFieldMetrics creates a no-op FieldMetrics.
func NewNoOpFieldMetrics() FieldMetrics {
	return &NoOpFieldMetrics{}
}

func (n *NoOpFieldMetrics) RecordOperation(ctx context.Context, operation, kind, status string) {}

func (n *NoOpFieldMetrics) RecordDuration(
	ctx context.Context,
	operation, kind string,
	duration time.Duration,
	status string,
) {
}
