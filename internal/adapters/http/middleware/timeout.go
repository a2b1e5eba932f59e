package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
)

// errDeadline is what a 504 reports: TeamForge did not answer in time.
var errDeadline = fmt.Errorf("%w: deadline exceeded", domain.ErrUnavailable)

// Timeout bounds each request to d. The handler's context carries the
// deadline, so a SOAP call in flight is canceled when it passes; the session
// logoff runs detached and is not cut short. If the handler has not committed
// a response by then the client gets a 504 problem document and anything the
// handler writes afterwards is dropped. The 504 is flushed at once, but
// ServeHTTP still waits for the handler to return, so server shutdown drains
// timed-out handlers along with the rest. d <= 0 disables the middleware.
//
// A panic in the handler is re-raised on the serving goroutine so Recovery
// still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			finished := make(chan any, 1)
			go func() {
				defer func() { finished <- recover() }()
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				bw.commitTo(w)
			case <-ctx.Done():
				timedOut := bw.abandon()
				if timedOut {
					p := dto.NewProblem(r, errDeadline)
					p.Status = http.StatusGatewayTimeout
					p.Title = http.StatusText(http.StatusGatewayTimeout)
					p.Detail = fmt.Sprintf("no response within %s", d)
					dto.WriteProblem(w, p)
					_ = http.NewResponseController(w).Flush()
				}
				if p := <-finished; p != nil {
					panic(p)
				}
				if !timedOut {
					bw.commitTo(w)
				}
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it or the 504 reaches the client.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(status int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 {
		bw.status = status
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

// abandon marks the response as superseded by a timeout. It reports false
// when the handler has already set a status, in which case its response wins.
func (bw *bufferedWriter) abandon() bool {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status != 0 {
		return false
	}
	bw.abandoned = true
	return true
}

func (bw *bufferedWriter) commitTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	_, _ = w.Write(bw.body.Bytes())
}
