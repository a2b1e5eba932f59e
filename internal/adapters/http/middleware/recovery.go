package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
)

// errPanic is what clients see for a recovered panic; the value and stack go
// to the log only.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a 500 problem document and an error
// log carrying the stack. http.ErrAbortHandler is re-raised so net/http can
// drop the connection quietly. If the handler already started its response
// only the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)
				if !rw.committed() {
					dto.WriteError(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
