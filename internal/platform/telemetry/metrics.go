package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const meterName = "github.com/jsamuelsen11/teamforge-tracker"

// Metrics holds the instruments recorded by the service.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// SOAPCallDuration and SOAPCallTotal are labelled by TeamForge service,
	// operation and result (success, fault, error).
	SOAPCallDuration metric.Float64Histogram
	SOAPCallTotal    metric.Int64Counter

	// SessionTotal counts login and logoff calls.
	SessionTotal metric.Int64Counter
}

// NewMetrics registers every instrument on mp's module-scoped meter.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterName, metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)))
	m := &Metrics{}

	histograms := []struct {
		dst        *metric.Float64Histogram
		name, help string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of outgoing HTTP requests"},
		{&m.SOAPCallDuration, "teamforge.soap.call.duration", "Duration of TeamForge SOAP calls"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.help), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst              *metric.Int64Counter
		name, help, unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Incoming HTTP requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Outgoing HTTP requests", "{request}"},
		{&m.SOAPCallTotal, "teamforge.soap.call.total", "TeamForge SOAP calls", "{call}"},
		{&m.SessionTotal, "teamforge.session.total", "TeamForge login and logoff calls", "{call}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.help), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("registering %s: %w", c.name, err)
		}
		*c.dst = inst
	}
	return m, nil
}
