package httpclient

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
)

// soapAction returns the unquoted SOAPAction header, or "".
func soapAction(req *http.Request) string {
	return strings.Trim(req.Header.Get("SOAPAction"), `"`)
}

// startSpan opens a client span named after the SOAP operation (or the
// method for plain HTTP) and injects W3C trace context into req.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	name := "HTTP " + req.Method + " " + c.serviceName
	attrs := []attribute.KeyValue{
		attribute.String("http.method", req.Method),
		attribute.String("http.url", req.URL.Redacted()),
		telemetry.AttrPeerService.String(c.serviceName),
	}
	if op := soapAction(req); op != "" {
		name = "SOAP " + op
		attrs = append(attrs, telemetry.AttrSOAPOperation.String(op))
	}

	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		if isSOAPFault(resp) {
			span.SetAttributes(telemetry.AttrResult.String("fault"))
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// outcome labels a finished call: success, fault, circuit_open or error.
func outcome(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case resp == nil:
		return "error"
	case resp.StatusCode < http.StatusBadRequest:
		return "success"
	case isSOAPFault(resp):
		return "fault"
	default:
		return "error"
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(resp, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// isSOAPFault reports whether resp carries a SOAP 1.1 fault: servers answer
// faults with HTTP 500 and an XML envelope.
func isSOAPFault(resp *http.Response) bool {
	if resp.StatusCode != http.StatusInternalServerError {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "text/xml" || mediaType == "application/soap+xml"
}
