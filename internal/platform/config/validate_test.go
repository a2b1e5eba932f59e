package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	c := defaultConfig()
	c.TeamForge.BaseURL = "http://teamforge"
	c.TeamForge.Username = "admin"
	return c
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want defaults plus connection settings to be valid", err)
	}

	c.Server.RequestTimeout = 0
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want a zero request timeout to mean disabled", err)
	}

	bare := defaultConfig()
	if err := bare.Validate(); err == nil {
		t.Error("Validate() = nil for defaults without a TeamForge server")
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"no write timeout", func(c *Config) { c.Server.WriteTimeout = 0 }, "server.write_timeout"},
		{"request timeout equals write timeout", func(c *Config) {
			c.Server.RequestTimeout = c.Server.WriteTimeout
		}, "server.request_timeout"},
		{"negative request timeout", func(c *Config) { c.Server.RequestTimeout = -time.Second }, "server.request_timeout"},
		{"verbose level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"xml logs", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"relative base url", func(c *Config) { c.TeamForge.BaseURL = "teamforge/sf" }, "teamforge.base_url"},
		{"ftp base url", func(c *Config) { c.TeamForge.BaseURL = "ftp://teamforge" }, "teamforge.base_url"},
		{"no username", func(c *Config) { c.TeamForge.Username = "" }, "teamforge.username"},
		{"keyring without key", func(c *Config) {
			c.TeamForge.Keyring.Enabled = true
			c.TeamForge.Keyring.Key = ""
		}, "teamforge.keyring.key"},
		{"zero attempts", func(c *Config) { c.Client.Retry.MaxAttempts = 0 }, "client.retry.max_attempts"},
		{"rate without burst", func(c *Config) {
			c.Client.RateLimit.RequestsPerSecond = 5
			c.Client.RateLimit.BurstSize = 0
		}, "client.rate_limit.burst_size"},
		{"otlp without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, "telemetry.endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("Validate() = %v, want a complaint about %s", err, tt.wantKey)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.Server.Port = -1
	c.Log.Level = "loud"
	c.TeamForge.Username = ""

	err := c.Validate()
	for _, key := range []string{"server.port", "log.level", "teamforge.username"} {
		if err == nil || !strings.Contains(err.Error(), key) {
			t.Errorf("Validate() = %v, missing %s", err, key)
		}
	}
}
