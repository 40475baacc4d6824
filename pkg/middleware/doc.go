// Package middleware provides observability middleware and instrumentation
// hooks for servers built around substrate stores: Prometheus metrics for
// HTTP traffic, store writes, notifications and change signals, and
// OpenTelemetry tracing for requests and store events.
package middleware
