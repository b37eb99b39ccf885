// Package metric provides Prometheus metrics for authcore.
//
// Metrics cover account activity (registrations, login outcomes) and the
// HTTP surface (request counts and latencies). They are exposed at
// /metrics in Prometheus exposition format.
package metric
