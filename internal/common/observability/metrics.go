// internal/common/observability/metrics.go
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	auditCounter  otelmetric.Int64Counter
	auditDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	auditCounter, _ := meter.Int64Counter(
		"audits.processed",
		otelmetric.WithDescription("Number of audit submissions processed"),
	)

	auditDuration, _ := meter.Float64Histogram(
		"audits.duration",
		otelmetric.WithDescription("Audit session duration from creation to submission"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		auditCounter:  auditCounter,
		auditDuration: auditDuration,
	}
}

// RecordAuditProcessed counts a submitted audit with its grade letter.
func (o *Observability) RecordAuditProcessed(ctx context.Context, grade string) {
	if o.auditCounter != nil {
		o.auditCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("grade", grade),
		))
	}
}

// RecordAuditDuration records how long a session took from first question
// to submission.
func (o *Observability) RecordAuditDuration(ctx context.Context, duration time.Duration, grade string) {
	if o.auditDuration != nil {
		o.auditDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("grade", grade),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
