package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors and the registry they live in.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	reg *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPLatency   *prometheus.HistogramVec
	GuidesServed  *prometheus.CounterVec
	RemoteCalls   *prometheus.CounterVec
	RemoteLatency prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "tourguide", Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		HTTPLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tourguide", Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		GuidesServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "tourguide", Name: "guides_served_total", Help: "Guides served by mode."},
			[]string{"mode"}, // remote|fallback
		),
		RemoteCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "tourguide", Name: "remote_calls_total", Help: "Remote model calls by outcome."},
			[]string{"outcome"}, // ok|error|timeout|panic
		),
		RemoteLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "tourguide", Name: "remote_call_duration_seconds",
				Help:    "Remote model call duration seconds.",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
			},
		),
	}
	m.reg.MustRegister(m.HTTPRequests, m.HTTPLatency, m.GuidesServed, m.RemoteCalls, m.RemoteLatency)
	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) ObserveGuide(mode string) {
	if m == nil {
		return
	}
	m.GuidesServed.WithLabelValues(mode).Inc()
}

func (m *Metrics) ObserveRemote(outcome string, dur time.Duration) {
	if m == nil {
		return
	}
	m.RemoteCalls.WithLabelValues(outcome).Inc()
	m.RemoteLatency.Observe(dur.Seconds())
}
