// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles all collectors on a private registry so tests can build
// isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	SessionsStarted prometheus.Counter
	EventsRecorded  prometheus.Counter
	SessionsEnded   prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halo_sessions_started_total",
			Help: "Total number of session start calls that created or touched a session",
		}),
		EventsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halo_events_recorded_total",
			Help: "Total number of behavioural events recorded",
		}),
		SessionsEnded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "halo_sessions_ended_total",
			Help: "Total number of successful session end calls",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "halo_http_request_duration_seconds",
			Help: "Duration of HTTP requests",
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.SessionsStarted,
		m.EventsRecorded,
		m.SessionsEnded,
		m.RequestDuration,
	)
	return m
}

// Handler serves the /metrics endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
