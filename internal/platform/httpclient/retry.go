package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

type noReplayKey struct{}

// WithoutReplay marks outbound requests made with ctx as unsafe to send more
// than once. A write that timed out may already have been applied by the
// server, so mutating SOAP operations are sent exactly once regardless of
// the configured retry policy.
func WithoutReplay(ctx context.Context) context.Context {
	return context.WithValue(ctx, noReplayKey{}, true)
}

// attemptsFor returns how many times a request made with ctx may be sent.
func (c *Client) attemptsFor(ctx context.Context) int {
	if noReplay, _ := ctx.Value(noReplayKey{}).(bool); noReplay {
		return 1
	}
	return c.retryCfg.maxAttempts
}

// doWithRetry sends req until it settles or the attempt budget runs out.
// The body is buffered once and replayed on every attempt. The last response
// is written to resp, even when it is an error status, so the caller can
// decode a fault envelope from it; the caller closes the body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}
	attempts := c.attemptsFor(ctx)

	var payload []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return fmt.Errorf("reading request body: %w", err)
		}
		payload = b
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, attempts, lastErr); err != nil {
				return err
			}
		}
		if payload != nil {
			req.Body = io.NopCloser(bytes.NewReader(payload))
			req.ContentLength = int64(len(payload))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr = err
			continue
		}
		if settled(r) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
	return lastErr
}

// settled reports whether r is a final answer. SOAP faults arrive as HTTP 500
// but are decisions by the server, not transient failures.
func settled(r *http.Response) bool {
	return !isRetryableStatus(r.StatusCode) || isSOAPFault(r)
}

// pause logs the upcoming attempt and waits out its backoff.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt, attempts int, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)

	logging.FromContext(ctx).WarnContext(ctx, "retrying SOAP request",
		slog.String("peer_service", c.serviceName),
		slog.String("soap_action", req.Header.Get("SOAPAction")),
		slog.String("url", req.URL.Redacted()),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns the delay before the given retry (1 is the first retry):
// initialInterval * multiplier^(attempt-1), capped at maxInterval, then
// jittered by ±jitterFraction.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := math.Min(
		float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(attempt-1)),
		float64(cfg.maxInterval),
	)
	delay *= 1 + jitterFraction*(2*rand.Float64()-1) //nolint:gosec // jitter, not a secret
	return time.Duration(math.Max(delay, 0))
}

// isRetryable reports whether a transport error may succeed on another
// attempt. Cancellation and deadlines are final; everything else, network
// errors included, is worth another try.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether an HTTP status is worth another attempt:
// 429 and every 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
