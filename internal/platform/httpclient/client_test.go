package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
)

const trackerPath = "/ce-soap50/services/TrackerApp"

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       1 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// reply is one canned answer from the fake endpoint.
type reply struct {
	status      int
	contentType string
	body        string
}

var (
	okReply    = reply{status: http.StatusOK, contentType: "text/xml; charset=utf-8", body: "<Envelope><Body/></Envelope>"}
	faultReply = reply{status: http.StatusInternalServerError, contentType: "text/xml; charset=utf-8", body: "<Envelope><Body><Fault/></Body></Envelope>"}
	proxyDown  = reply{status: http.StatusBadGateway, contentType: "text/html", body: "bad gateway"}
)

// endpoint is a fake SOAP endpoint answering the n-th request (1-based) with
// script(n) and recording what it received.
type endpoint struct {
	srv   *httptest.Server
	count atomic.Int32

	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
}

func newEndpoint(t *testing.T, script func(n int) reply) *endpoint {
	t.Helper()

	e := &endpoint{}
	e.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(e.count.Add(1))
		b, _ := io.ReadAll(r.Body)
		e.mu.Lock()
		e.requests = append(e.requests, r.Clone(context.Background()))
		e.bodies = append(e.bodies, string(b))
		e.mu.Unlock()

		rep := script(n)
		if rep.contentType != "" {
			w.Header().Set("Content-Type", rep.contentType)
		}
		w.WriteHeader(rep.status)
		_, _ = io.WriteString(w, rep.body)
	}))
	t.Cleanup(e.srv.Close)
	return e
}

func always(r reply) func(int) reply { return func(int) reply { return r } }

// call posts a SOAP request for operation and returns the response with its
// body already read and closed.
func call(ctx context.Context, t *testing.T, c *httpclient.Client, operation string) (*http.Response, string, error) {
	t.Helper()

	req, err := c.NewRequest(ctx, http.MethodPost, trackerPath, strings.NewReader("<"+operation+"/>"))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set("SOAPAction", `"`+operation+`"`)

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body), err
}

func TestDo_DeliversRequest(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, always(okReply))
	c := httpclient.New(e.srv.URL, testConfig(), "teamforge", nil, testLogger())

	ctx := httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-123"), "corr-456")
	resp, body, err := call(ctx, t, c, "getArtifactList")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK || body != okReply.body {
		t.Errorf("response = %d %q", resp.StatusCode, body)
	}

	got := e.requests[0]
	if got.URL.Path != trackerPath || e.bodies[0] != "<getArtifactList/>" {
		t.Errorf("request = %s %q", got.URL.Path, e.bodies[0])
	}
	if got.Header.Get("SOAPAction") != `"getArtifactList"` {
		t.Errorf("SOAPAction = %q", got.Header.Get("SOAPAction"))
	}
	if got.Header.Get("X-Request-ID") != "req-123" || got.Header.Get("X-Correlation-ID") != "corr-456" {
		t.Errorf("id headers = %q / %q", got.Header.Get("X-Request-ID"), got.Header.Get("X-Correlation-ID"))
	}
}

func TestDo_NoIDHeadersWithoutContext(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, always(okReply))
	c := httpclient.New(e.srv.URL, testConfig(), "teamforge", nil, testLogger())

	if _, _, err := call(context.Background(), t, c, "getProjectList"); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	for _, h := range []string{"X-Request-ID", "X-Correlation-ID"} {
		if v := e.requests[0].Header.Get(h); v != "" {
			t.Errorf("%s = %q, want absent", h, v)
		}
	}
}

func TestDo_RetryPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		script       func(n int) reply
		noReplay     bool
		wantAttempts int32
		wantStatus   int
		wantErr      bool
	}{
		{
			name: "proxy errors then success",
			script: func(n int) reply {
				if n <= 2 {
					return proxyDown
				}
				return okReply
			},
			wantAttempts: 3,
			wantStatus:   http.StatusOK,
		},
		{
			name: "throttled once",
			script: func(n int) reply {
				if n == 1 {
					return reply{status: http.StatusTooManyRequests}
				}
				return okReply
			},
			wantAttempts: 2,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "client error is final",
			script:       always(reply{status: http.StatusNotFound}),
			wantAttempts: 1,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "soap fault is final",
			script:       always(faultReply),
			wantAttempts: 1,
			wantStatus:   http.StatusInternalServerError,
		},
		{
			name:         "attempts exhausted",
			script:       always(proxyDown),
			wantAttempts: 3,
			wantStatus:   http.StatusBadGateway,
			wantErr:      true,
		},
		{
			name:         "write not replayed",
			script:       always(proxyDown),
			noReplay:     true,
			wantAttempts: 1,
			wantStatus:   http.StatusBadGateway,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newEndpoint(t, tt.script)
			c := httpclient.New(e.srv.URL, testConfig(), "teamforge", nil, testLogger())

			ctx := context.Background()
			if tt.noReplay {
				ctx = httpclient.WithoutReplay(ctx)
			}
			resp, _, err := call(ctx, t, c, "setArtifactData")

			if (err != nil) != tt.wantErr {
				t.Errorf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil || resp.StatusCode != tt.wantStatus {
				t.Errorf("response = %v, want status %d", resp, tt.wantStatus)
			}
			if got := e.count.Load(); got != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", got, tt.wantAttempts)
			}
		})
	}
}

func TestDo_BodyReplayedOnRetry(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, func(n int) reply {
		if n == 1 {
			return proxyDown
		}
		return okReply
	})
	c := httpclient.New(e.srv.URL, testConfig(), "teamforge", nil, testLogger())

	if _, _, err := call(context.Background(), t, c, "getFields"); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(e.bodies) != 2 || e.bodies[0] != e.bodies[1] || e.bodies[1] != "<getFields/>" {
		t.Errorf("bodies = %q, want the envelope twice", e.bodies)
	}
}

func TestDo_BreakerLifecycle(t *testing.T) {
	t.Parallel()

	var down atomic.Bool
	down.Store(true)
	e := newEndpoint(t, func(int) reply {
		if down.Load() {
			return proxyDown
		}
		return okReply
	})

	cfg := testConfig()
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 2
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	c := httpclient.New(e.srv.URL, cfg, "teamforge", nil, testLogger())
	ctx := context.Background()

	for range 2 {
		_, _, _ = call(ctx, t, c, "getProjectList")
	}
	if err := c.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "open") {
		t.Fatalf("HealthCheck() = %v, want open breaker", err)
	}

	before := e.count.Load()
	if _, _, err := call(ctx, t, c, "getProjectList"); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Do() error = %v, want ErrOpenState", err)
	}
	if e.count.Load() != before {
		t.Error("TeamForge was called while the breaker was open")
	}

	time.Sleep(150 * time.Millisecond)
	if err := c.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "half-open") {
		t.Errorf("HealthCheck() = %v, want half-open", err)
	}

	down.Store(false)
	if _, _, err := call(ctx, t, c, "getProjectList"); err != nil {
		t.Fatalf("probe Do() error = %v", err)
	}
	if err := c.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() = %v, want closed after a good probe", err)
	}
}

func TestDo_FaultsAndCancellationsKeepBreakerClosed(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, always(faultReply))
	cfg := testConfig()
	cfg.CircuitBreaker.MaxFailures = 1
	c := httpclient.New(e.srv.URL, cfg, "teamforge", nil, testLogger())

	for range 3 {
		if _, _, err := call(context.Background(), t, c, "getArtifactData"); err != nil {
			t.Fatalf("Do() error = %v, want nil for a fault", err)
		}
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := call(canceled, t, c, "getArtifactData"); err == nil {
		t.Fatal("Do() with canceled context error = nil")
	}

	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want closed", err)
	}
}

func TestDo_RateLimited(t *testing.T) {
	t.Parallel()

	e := newEndpoint(t, always(okReply))
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1}
	c := httpclient.New(e.srv.URL, cfg, "teamforge", nil, testLogger())

	if _, _, err := call(context.Background(), t, c, "login"); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	// The bucket is empty; a short deadline cannot wait a full second.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, _, err := call(ctx, t, c, "getProjectList"); err == nil {
		t.Fatal("second Do() error = nil, want rate limiter error")
	}
	if got := e.count.Load(); got != 1 {
		t.Errorf("TeamForge saw %d requests, want 1", got)
	}
}

func TestDo_RecordsClientMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "teamforge-tracker")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	e := newEndpoint(t, always(faultReply))
	c := httpclient.New(e.srv.URL, testConfig(), "teamforge", metrics, testLogger())
	if _, _, err := call(context.Background(), t, c, "setArtifactData"); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			sum, _ := m.Data.(metricdata.Sum[int64])
			if len(sum.DataPoints) != 1 {
				t.Fatalf("data points = %d, want 1", len(sum.DataPoints))
			}
			if v, _ := sum.DataPoints[0].Attributes.Value(telemetry.AttrResult); v.AsString() != "fault" {
				t.Errorf("result = %q, want fault", v.AsString())
			}
			return
		}
	}
	t.Error("http.client.request.total not recorded")
}

func TestClient_NewRequest_JoinsBaseURL(t *testing.T) {
	t.Parallel()

	c := httpclient.New("http://teamforge/", testConfig(), "teamforge", nil, testLogger())

	req, err := c.NewRequest(context.Background(), http.MethodPost, "/ce-soap50/services/FrsApp", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if got, want := req.URL.String(), "http://teamforge/ce-soap50/services/FrsApp"; got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
	if c.Name() != "teamforge" {
		t.Errorf("Name() = %q, want teamforge", c.Name())
	}
}
