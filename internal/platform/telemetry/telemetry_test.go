package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
)

// Start installs otel globals, so these tests do not run in parallel with
// each other.

func TestStart(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.TelemetryConfig
		wantMetrics bool
		wantErr     bool
	}{
		{name: "disabled", cfg: config.TelemetryConfig{Exporter: "zipkin"}},
		{name: "stdout", cfg: config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterStdout}, wantMetrics: true},
		{
			name:        "otlp",
			cfg:         config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP, Endpoint: "http://otel-collector:4318"},
			wantMetrics: true,
		},
		{name: "otlp without collector", cfg: config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP}, wantErr: true},
		{name: "unknown exporter", cfg: config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tt.cfg.ServiceName = "teamforge-tracker"

			p, err := telemetry.Start(ctx, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Start() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// No collector runs during tests, so OTLP flushes may fail.
			t.Cleanup(func() { _ = p.Shutdown(ctx) })

			if (p.Metrics() != nil) != tt.wantMetrics {
				t.Errorf("Metrics() = %v, want present %v", p.Metrics(), tt.wantMetrics)
			}
		})
	}
}

func TestShutdown_DisabledIsNoop(t *testing.T) {
	p, err := telemetry.Start(context.Background(), config.TelemetryConfig{})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}

func TestStart_PropagatesTraceContext(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Start(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "teamforge-tracker",
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { _ = p.Shutdown(ctx) })

	spanCtx, span := otel.Tracer("test").Start(ctx, "TrackerApp.getArtifactList")
	defer span.End()

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(spanCtx, carrier)
	if carrier.Get("traceparent") == "" {
		t.Errorf("outbound headers %v lack traceparent", carrier)
	}
}

func TestNewMetrics_RecordsSOAPCalls(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := telemetry.NewMetrics(mp, "teamforge-tracker")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(
		telemetry.AttrSOAPService.String("TrackerApp"),
		telemetry.AttrSOAPOperation.String("setArtifactData"),
		telemetry.AttrResult.String("fault"),
	)
	m.SOAPCallTotal.Add(ctx, 1, attrs)
	m.SOAPCallDuration.Record(ctx, 0.25, attrs)
	m.SessionTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrSessionEvent.String("login")))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			got[md.Name] = md.Data
		}
	}

	total, ok := got["teamforge.soap.call.total"].(metricdata.Sum[int64])
	if !ok || len(total.DataPoints) != 1 {
		t.Fatalf("teamforge.soap.call.total = %#v", got["teamforge.soap.call.total"])
	}
	if op, _ := total.DataPoints[0].Attributes.Value(telemetry.AttrSOAPOperation); op.AsString() != "setArtifactData" {
		t.Errorf("soap.operation = %q", op.AsString())
	}
	if _, ok := got["teamforge.soap.call.duration"].(metricdata.Histogram[float64]); !ok {
		t.Error("teamforge.soap.call.duration not recorded")
	}
	if _, ok := got["teamforge.session.total"].(metricdata.Sum[int64]); !ok {
		t.Error("teamforge.session.total not recorded")
	}
}
