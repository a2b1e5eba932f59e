package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/logging"
)

const redacted = "[REDACTED]"

// sensitiveQueryParams never reach a log line with their values.
var sensitiveQueryParams = []string{"password", "sessionId", "session_id", "token"}

// RedactHeaders renders headers as log attributes sorted by name, one per
// header with its values comma-joined. Values of logging.SensitiveHeaders are
// replaced by "[REDACTED]".
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}

// RedactQuery returns r's query string with sensitive parameter values
// replaced. r is not modified.
func RedactQuery(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return ""
	}
	q := r.URL.Query()
	for _, name := range sensitiveQueryParams {
		if q.Has(name) {
			q.Set(name, redacted)
		}
	}
	return q.Encode()
}
