package httpclient

import (
	"context"
	"net/http"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID makes outbound requests made with ctx carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID makes outbound requests made with ctx carry
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func injectIDs(ctx context.Context, req *http.Request) {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}
