package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"
)

// maxIDLength caps inbound request and correlation ids. Longer or
// non-printable values are replaced rather than forwarded to TeamForge.
const maxIDLength = 128

// Middleware keeps its own context keys; httpclient reads separate ones so
// neither package imports the other's internals.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id for handlers and for the X-Request-ID header on
// outbound SOAP calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id for handlers and for the X-Correlation-ID
// header on outbound SOAP calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation id, or "" outside a
// request.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID adopts a well-formed X-Request-ID from the caller or mints a
// UUID v4, and echoes it on the response.
func RequestID() func(http.Handler) http.Handler {
	return propagateID(headerRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID adopts a well-formed X-Correlation-ID from the caller or
// falls back to the request id, so it must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return propagateID(headerCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func propagateID(
	header string,
	store func(context.Context, string) context.Context,
	fallback func(*http.Request) string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !validID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// validID accepts non-empty printable ASCII up to maxIDLength.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
