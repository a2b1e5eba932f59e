package config

import "time"

// defaultConfig is the lowest configuration layer. Every field appears, so
// every key is known to the environment mapper even when no YAML sets it.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    2 * time.Minute,
			RequestTimeout: 8 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "json"},
		TeamForge: TeamForgeConfig{
			ReleaseField: "resolvedReleaseId",
			Keyring:      KeyringConfig{Service: "teamforge-tracker", Key: "password"},
		},
		Client: ClientConfig{
			Timeout: 30 * time.Second,
			// Reads only; writes are never replayed regardless.
			Retry: RetryConfig{
				MaxAttempts:     1,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2,
			},
			CircuitBreaker: CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
			RateLimit:      RateLimitConfig{BurstSize: 1},
		},
		Telemetry: TelemetryConfig{Exporter: "stdout", ServiceName: "teamforge-tracker"},
	}
}
