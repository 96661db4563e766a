// Package metrics instruments tool dispatches with Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a dedicated Prometheus registry so that multiple instances
// (e.g. in tests) never collide on collector registration.
type Recorder struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casa_tool_calls_total",
		Help: "Tool dispatches by tool name and outcome.",
	}, []string{"tool", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "casa_tool_call_duration_seconds",
		Help:    "Tool dispatch duration, including backend round-trips.",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})

	reg.MustRegister(calls, duration)
	return &Recorder{registry: reg, calls: calls, duration: duration}
}

// Observe records a completed dispatch.
func (r *Recorder) Observe(tool, outcome string, elapsed time.Duration) {
	r.calls.WithLabelValues(tool, outcome).Inc()
	r.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
