package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder collects dispatch and generation metrics on its own registry,
// so each container (and each test) starts from zero
type Recorder struct {
	registry *prometheus.Registry

	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	generationsTotal   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder registered on a fresh registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitplan_requests_total",
				Help: "Total number of dispatched requests",
			},
			[]string{"route", "status"},
		),

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fitplan_request_duration_seconds",
				Help:    "Dispatch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),

		generationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitplan_generations_total",
				Help: "Total number of content generation calls",
			},
			[]string{"kind", "result"},
		),

		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fitplan_generation_duration_seconds",
				Help:    "Duration of content generation calls in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120},
			},
			[]string{"kind"},
		),
	}
}

// ObserveRequest records one dispatched request
func (r *Recorder) ObserveRequest(route string, status int, duration time.Duration) {
	r.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// ObserveGeneration records one generation call
func (r *Recorder) ObserveGeneration(kind string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	r.generationsTotal.WithLabelValues(kind, result).Inc()
	r.generationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// Registry returns the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler exposes the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
