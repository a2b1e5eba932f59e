package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name the underlying
// [httpclient.Client] uses for tracing and metrics.
func (c *TeamForgeClient) Name() string {
	return c.transport.Name()
}

// HealthCheck reports TeamForge availability from the circuit breaker state.
// No SOAP call is made.
func (c *TeamForgeClient) HealthCheck(ctx context.Context) error {
	return c.transport.HealthCheck(ctx)
}
