package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var errNoCollector = errors.New("otlp exporter needs telemetry.endpoint")

type exporterKind string

func parseExporter(name, endpoint string) (exporterKind, error) {
	switch name {
	case ExporterStdout:
	case ExporterOTLP:
		if endpoint == "" {
			return "", errNoCollector
		}
	default:
		return "", fmt.Errorf("telemetry exporter %q is not one of %s, %s", name, ExporterStdout, ExporterOTLP)
	}
	return exporterKind(name), nil
}

func (k exporterKind) spanExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	if k != ExporterOTLP {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, tls := collector(endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if !tls {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (k exporterKind) metricExporter(ctx context.Context, endpoint string) (sdkmetric.Exporter, error) {
	if k != ExporterOTLP {
		return stdoutmetric.New()
	}
	host, tls := collector(endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if !tls {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// collector splits a collector URL such as "http://otel-collector:4318" into
// the host:port the OTLP exporters want and whether it is served over TLS.
// A bare host:port is taken as plain HTTP.
func collector(endpoint string) (host string, tls bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
