package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
)

const (
	tracerName     = "github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http"
	unmatchedRoute = "unmatched"
)

// OpenTelemetry continues the caller's W3C trace (if any) in a server span
// and records request metrics. Spans and metric labels use the chi route
// pattern, e.g. /api/v1/issues/{id}/close, never the concrete issue id.
// metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(parent, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			// chi fills the route context while routing, so it is only
			// complete once the handler has returned.
			route := routePattern(r)
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(rw.Status()), telemetry.AttrHTTPRoute.String(route))
			if rw.Status() >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.Status()))
			}

			if metrics != nil {
				recordServed(ctx, metrics, r.Method, route, rw.Status(), time.Since(start))
			}
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

func recordServed(ctx context.Context, m *telemetry.Metrics, method, route string, status int, elapsed time.Duration) {
	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}
