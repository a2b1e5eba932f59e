// Package config provides configuration loading and validation for the tracker service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	TeamForge TeamForgeConfig `koanf:"teamforge"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings. RequestTimeout bounds each
// handler and must leave room inside WriteTimeout for the 504 it produces;
// zero disables it.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TeamForgeConfig holds the TeamForge server address, credentials, and the
// default category filter applied when a request names none.
type TeamForgeConfig struct {
	BaseURL      string        `koanf:"base_url"`
	Username     string        `koanf:"username"`
	Password     string        `koanf:"password"`
	ReleaseField string        `koanf:"release_field"`
	ProjectID    string        `koanf:"project_id"`
	TrackerID    string        `koanf:"tracker_id"`
	Keyring      KeyringConfig `koanf:"keyring"`
}

// KeyringConfig selects an OS keyring as the password source. When enabled,
// teamforge.password is ignored.
type KeyringConfig struct {
	Enabled bool   `koanf:"enabled"`
	Service string `koanf:"service"`
	Key     string `koanf:"key"`
	FileDir string `koanf:"file_dir"`
}

// ClientConfig holds SOAP transport settings.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig holds client-side token bucket settings. A zero rate
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
