// Package middleware holds the inbound HTTP pipeline. The router installs it
// outermost first:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
package middleware
