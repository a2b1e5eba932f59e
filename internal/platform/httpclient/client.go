// Package httpclient is the outbound HTTP stack for the TeamForge SOAP
// endpoints. Every call passes, in order, through
//
//	circuit breaker -> rate limiter -> id headers -> client span -> retry -> net/http
//
// and is counted in the client metrics whatever the outcome.
//
//	client := httpclient.New(cfg.TeamForge.BaseURL, &cfg.Client, "teamforge", metrics, logger)
//	req, _ := client.NewRequest(ctx, http.MethodPost, "/ce-soap50/services/TrackerApp", body)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware puts request and correlation ids on the context with
// WithRequestID and WithCorrelationID; mutating SOAP calls are wrapped in
// WithoutReplay.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/urlpath"
)

// retryConfig is config.RetryConfig copied into unexported fields.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is the instrumented client for one downstream base URL.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New creates a client rooted at baseURL. serviceName labels traces, metrics
// and the readiness check. metrics may be nil.
func New(
	baseURL string,
	cfg *config.ClientConfig,
	serviceName string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     baseURL,
		serviceName: serviceName,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
		limiter:     limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// NewRequest builds a request for path relative to the base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, urlpath.Join(c.baseURL, path), body)
	if err != nil {
		return nil, fmt.Errorf("building %s request for %s: %w", method, path, err)
	}
	return req, nil
}

// Do sends req through the pipeline.
//
// A nil error means TeamForge answered: any non-retryable status, including
// a SOAP fault (HTTP 500 with an XML body). The caller closes resp.Body.
// When retries run out on a retryable status both resp and err are set and
// the body is still open. Breaker rejections, rate limiter cancellation and
// transport errors return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		injectIDs(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		err := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &resp)
		finishSpan(span, resp, err)
		return struct{}{}, err
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// Name returns the downstream name, e.g. "teamforge".
func (c *Client) Name() string {
	return c.serviceName
}
