package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// problems collects every violation so one failed start reports them all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.TeamForge.check(&p)
	c.Client.check(&p)
	c.Telemetry.check(&p)
	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port %d is outside 1-65535", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(s.RequestTimeout >= 0 && s.RequestTimeout < s.WriteTimeout,
		"server.request_timeout %s must be below server.write_timeout %s", s.RequestTimeout, s.WriteTimeout)
}

func (l *LogConfig) check(p *problems) {
	p.require(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level %q is not debug, info, warn or error", l.Level)
	p.require(l.Format == "json" || l.Format == "text", "log.format %q is not json or text", l.Format)
}

func (tf *TeamForgeConfig) check(p *problems) {
	u, err := url.Parse(tf.BaseURL)
	p.require(err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "",
		"teamforge.base_url %q is not an absolute http(s) URL", tf.BaseURL)
	p.require(tf.Username != "", "teamforge.username is required")
	if tf.Keyring.Enabled {
		p.require(tf.Keyring.Service != "", "teamforge.keyring.service is required when the keyring is enabled")
		p.require(tf.Keyring.Key != "", "teamforge.keyring.key is required when the keyring is enabled")
	}
}

func (cl *ClientConfig) check(p *problems) {
	p.require(cl.Timeout > 0, "client.timeout must be positive")
	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be at least 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be at least 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.require(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	if cl.RateLimit.RequestsPerSecond > 0 {
		p.require(cl.RateLimit.BurstSize >= 1,
			"client.rate_limit.burst_size must be at least 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
	}
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.require(t.Exporter == "stdout" || t.Exporter == "otlp", "telemetry.exporter %q is not stdout or otlp", t.Exporter)
	if t.Exporter == "otlp" {
		p.require(t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
	}
}
