package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
)

func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A caller that gives up says nothing about TeamForge's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// HealthCheck reports TeamForge availability from the circuit breaker state
// without making a network call. A half-open or open breaker is reported as
// an error; readiness of this service itself is unaffected.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// toUint32 clamps v into uint32; negatives become zero.
func toUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
