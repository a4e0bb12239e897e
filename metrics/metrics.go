// Package metrics exposes Prometheus metrics for the GCD server: request
// latency and in-flight requests for every route, and the outcome and size
// of every computation.
package metrics

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alextanhongpin/gcd/http/response"
)

const namespace = "gcd"

// Outcome labels of gcd_computations_total.
const (
	OutcomeOK          = "ok"
	OutcomeInvalidForm = "invalid_form"
	OutcomeParseError  = "parse_error"
	OutcomeEmptyList   = "empty_list"
)

// Metrics holds the collectors on a dedicated registry, so several servers
// or tests never share state.
//
//	m := metrics.New("v1.0.0")
//	h = m.Middleware(mux)
//	metricsMux.Handle("GET /metrics", m.Handler())
type Metrics struct {
	registry     *prometheus.Registry
	version      string
	inFlight     prometheus.Gauge
	duration     *prometheus.HistogramVec
	computations *prometheus.CounterVec
	numbers      prometheus.Histogram
}

func New(version string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		version:  version,
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_flight_requests",
			Help:      "A gauge of requests currently being served by the wrapped handler.",
		}),
		// Prometheus recommended unit for duration is seconds (float).
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "A histogram of latencies for requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status", "version"}),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Number of computation attempts by outcome.",
		}, []string{"outcome"}),
		numbers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "input_numbers",
			Help:      "A histogram of how many numbers each successful computation reduced.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.inFlight,
		m.duration,
		m.computations,
		m.numbers,
	)

	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

// ObserveComputation counts a computation attempt. Only successful ones
// contribute to the input size histogram.
func (m *Metrics) ObserveComputation(outcome string, numbers int) {
	m.computations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.numbers.Observe(float64(numbers))
	}
}

// Middleware records the latency of every request, labelled by the mux
// pattern that matched it. It must wrap the mux directly, so the pattern set
// by the mux is visible after the call.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wr := response.NewResponseWriterRecorder(w)

		m.inFlight.Inc()
		defer m.inFlight.Dec()

		defer func(start time.Time) {
			code := wr.StatusCode()
			rec := recover()
			if rec != nil {
				code = http.StatusInternalServerError
			}

			m.duration.
				WithLabelValues(r.Method, path(r), fmt.Sprint(code), m.version).
				Observe(time.Since(start).Seconds())

			// Re-panic to let the server handle it.
			if rec != nil {
				panic(rec)
			}
		}(time.Now())

		next.ServeHTTP(wr, r)
	})
}

// path returns the route of the matched pattern without the method prefix.
// Unmatched requests share one label to bound the cardinality.
func path(r *http.Request) string {
	fields := strings.Fields(r.Pattern)
	if len(fields) == 0 {
		return "unmatched"
	}

	return fields[len(fields)-1]
}
