package acl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
)

// maxResponseSize bounds how much of a SOAP response is read. Artifact lists
// of large trackers run to several megabytes.
const maxResponseSize = 64 << 20

// Service is the path of a TeamForge SOAP endpoint relative to the server
// root.
type Service string

// TeamForge SOAP 5.0 endpoints.
const (
	CollabNetService  Service = "/ce-soap50/services/CollabNet"
	TrackerAppService Service = "/ce-soap50/services/TrackerApp"
	FrsAppService     Service = "/ce-soap50/services/FrsApp"
)

// Name returns the short service name, e.g. "TrackerApp".
func (s Service) Name() string {
	return path.Base(string(s))
}

// Requester centralizes the SOAP call lifecycle for the gateway: envelope
// encoding, execution via httpclient.Client, response body cleanup, fault and
// status translation, result decoding, and per-operation metrics.
type Requester struct {
	client  *httpclient.Client
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client. If
// metrics is nil, metric recording is skipped.
func NewRequester(client *httpclient.Client, metrics *telemetry.Metrics, logger *slog.Logger) *Requester {
	return &Requester{client: client, metrics: metrics, logger: logger}
}

// Call invokes operation on service. reqBody must be a struct whose XMLName
// names the operation element; respBody receives the response element and
// may be nil.
//
// Faults are translated by TranslateFault, other non-200 responses by
// TranslateHTTPError. Transport failures (network, breaker open) wrap
// domain.ErrUnavailable.
func (r *Requester) Call(ctx context.Context, service Service, operation string, reqBody, respBody any) error {
	start := time.Now()
	result, err := r.call(ctx, service, operation, reqBody, respBody)
	r.recordMetrics(ctx, service, operation, start, result)
	return err
}

func (r *Requester) call(ctx context.Context, service Service, operation string, reqBody, respBody any) (string, error) {
	payload, err := marshalEnvelope(reqBody)
	if err != nil {
		return "error", fmt.Errorf("%s.%s: %w", service.Name(), operation, err)
	}

	req, err := r.client.NewRequest(ctx, http.MethodPost, string(service), bytes.NewReader(payload))
	if err != nil {
		return "error", err
	}
	req.Header.Set("Content-Type", soapContentType)
	req.Header.Set("SOAPAction", `"`+operation+`"`)

	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		r.logger.ErrorContext(ctx, "SOAP request failed",
			slog.String("service", service.Name()),
			slog.String("soap_operation", operation),
			slog.Any("error", err),
		)
		return "error", fmt.Errorf("%s.%s: %w: %w", service.Name(), operation, domain.ErrUnavailable, err)
	}
	// httpclient.Do returns both resp and err when retries are exhausted on a
	// 5xx status; the response body decides the outcome.
	defer r.closeBody(ctx, resp)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "error", fmt.Errorf("reading %s.%s response: %w", service.Name(), operation, err)
	}

	if resp.StatusCode == http.StatusOK {
		fault, err := decodeEnvelope(bytes.NewReader(body), respBody)
		if err != nil {
			return "error", fmt.Errorf("%s.%s: %w", service.Name(), operation, err)
		}
		if fault != nil {
			return "fault", TranslateFault(fault)
		}
		return "success", nil
	}

	if fault, err := decodeEnvelope(bytes.NewReader(body), nil); err == nil && fault != nil {
		r.logger.DebugContext(ctx, "SOAP fault",
			slog.String("service", service.Name()),
			slog.String("soap_operation", operation),
			slog.String("fault_code", fault.Code),
			slog.String("fault", fault.Name()),
		)
		return "fault", TranslateFault(fault)
	}

	r.logger.ErrorContext(ctx, "unexpected status",
		slog.String("service", service.Name()),
		slog.String("soap_operation", operation),
		slog.Int("status", resp.StatusCode),
	)
	return "error", TranslateHTTPError(resp.StatusCode, body)
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.Any("error", err),
		)
	}
}

func (r *Requester) recordMetrics(ctx context.Context, service Service, operation string, start time.Time, result string) {
	if r.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrSOAPService.String(service.Name()),
		telemetry.AttrSOAPOperation.String(operation),
		telemetry.AttrResult.String(result),
	)
	r.metrics.SOAPCallDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	r.metrics.SOAPCallTotal.Add(ctx, 1, attrs)
}
