// Package telemetry sets up OpenTelemetry tracing and metrics for the service
// and defines the instruments the HTTP and SOAP layers record into.
//
//	p, err := telemetry.Start(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	p.Metrics().SOAPCallTotal.Add(ctx, 1, ...)
//
// When telemetry is disabled Start returns providers whose Metrics is nil;
// every recorder in the service treats nil metrics as "do not record".
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
)

// Label keys shared by spans and metrics.
var (
	AttrHTTPMethod    = attribute.Key("http.method")
	AttrHTTPStatus    = attribute.Key("http.status_code")
	AttrHTTPRoute     = attribute.Key("http.route")
	AttrPeerService   = attribute.Key("peer.service")
	AttrResult        = attribute.Key("result")
	AttrSOAPService   = attribute.Key("soap.service")
	AttrSOAPOperation = attribute.Key("soap.operation")
	AttrSessionEvent  = attribute.Key("session.event")
)

// Providers owns the SDK tracer and meter providers installed by Start.
type Providers struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *Metrics
}

// Start installs global tracer and meter providers exporting to cfg's
// exporter, and the W3C trace context and baggage propagators. A disabled
// config yields empty providers and leaves the otel globals untouched.
func Start(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	kind, err := parseExporter(cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("describing %s resource: %w", cfg.ServiceName, err)
	}

	spans, err := kind.spanExporter(ctx, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}
	points, err := kind.metricExporter(ctx, cfg.Endpoint)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("metric exporter: %w", err)
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(points)),
			sdkmetric.WithResource(res),
		),
	}
	if p.metrics, err = NewMetrics(p.meter, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Metrics returns the registered instruments, or nil when telemetry is off.
func (p *Providers) Metrics() *Metrics {
	return p.metrics
}

// Shutdown flushes pending spans and metric points.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter: %w", err))
		}
	}
	return errors.Join(errs...)
}
