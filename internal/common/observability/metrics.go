// Package observability records request metrics through OpenTelemetry and
// exposes them on the default Prometheus registry.
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"college-portal/internal/common/logger"
)

type Observability struct {
	meterProvider   *metric.MeterProvider
	meter           otelmetric.Meter
	requestCounter  otelmetric.Int64Counter
	requestDuration otelmetric.Float64Histogram
	draftGauge      otelmetric.Int64UpDownCounter
	tracerProvider  *sdktrace.TracerProvider
	tracer          trace.Tracer
}

// New installs a meter provider backed by the Prometheus exporter and a
// tracer provider for request spans. On exporter failure metrics are dropped
// but tracing still runs.
func New(serviceName string, log logger.Logger) *Observability {
	tp := newTracerProvider(serviceName)
	installTracing(tp)

	exporter, err := prometheus.New()
	if err != nil {
		log.Warn("failed to create prometheus exporter", map[string]interface{}{"error": err})
		return &Observability{tracerProvider: tp, tracer: tp.Tracer(serviceName)}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	o := newWithProvider(provider, serviceName)
	o.tracerProvider = tp
	o.tracer = tp.Tracer(serviceName)
	return o
}

func newWithProvider(provider *metric.MeterProvider, serviceName string) *Observability {
	meter := provider.Meter(serviceName)

	requestCounter, _ := meter.Int64Counter(
		"portal.requests",
		otelmetric.WithDescription("Number of API requests handled"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"portal.request.duration",
		otelmetric.WithDescription("API request duration"),
		otelmetric.WithUnit("ms"),
	)

	draftGauge, _ := meter.Int64UpDownCounter(
		"portal.drafts",
		otelmetric.WithDescription("Drafts currently held in storage"),
	)

	return &Observability{
		meterProvider:   provider,
		meter:           meter,
		requestCounter:  requestCounter,
		requestDuration: requestDuration,
		draftGauge:      draftGauge,
	}
}

func (o *Observability) RecordRequest(ctx context.Context, route string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	if o.requestCounter != nil {
		o.requestCounter.Add(ctx, 1, attrs)
	}
	if o.requestDuration != nil {
		o.requestDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

// AdjustDrafts moves the draft gauge by delta. A nil receiver records nothing.
func (o *Observability) AdjustDrafts(ctx context.Context, delta int64) {
	if o != nil && o.draftGauge != nil {
		o.draftGauge.Add(ctx, delta)
	}
}

func (o *Observability) Shutdown() {
	if o == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), spanFlushTimeout)
	defer cancel()
	o.shutdownTracing(ctx)
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
}
