// Package metric provides Prometheus metrics for authcore.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics backed by a dedicated
// Prometheus registry.
type Registry struct {
	// Account metrics
	UsersRegistered prometheus.Counter
	LoginsTotal     *prometheus.CounterVec

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	reg *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all collectors
// registered, including the standard Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "authcore_users_registered_total",
			Help: "Total number of successfully registered users.",
		}),
		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authcore_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authcore_http_requests_total",
			Help: "HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "authcore_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		reg: reg,
	}

	reg.MustRegister(
		r.UsersRegistered,
		r.LoginsTotal,
		r.RequestsTotal,
		r.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
