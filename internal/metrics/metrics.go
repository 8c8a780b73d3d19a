// Package metrics implements the RED metric set for the storefront service.
//
// All collectors live in a private registry owned by Metrics rather than the
// package-global default, so multiple instances (servers, tests) never fight
// over registration.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// RouteUnmatched is the route label recorded for requests that matched no
// registered route. A fixed sentinel keeps label cardinality bounded no
// matter what paths clients probe.
const RouteUnmatched = "unmatched"

// DefaultBuckets are the histogram boundaries used when Config.Buckets is
// empty. The top end reaches 60s because the prediction endpoint simulates
// latencies up to ~59s; the +Inf bucket is added by the client library.
var DefaultBuckets = []float64{
	0.001, 0.005, 0.01, 0.025, 0.05, 0.075,
	0.1, 0.25, 0.5, 0.75, 1, 2.5, 5, 7.5, 10,
	15, 20, 30, 45, 60,
}

// Config controls collector construction.
type Config struct {
	// Buckets are the duration histogram boundaries in seconds.
	// Empty selects DefaultBuckets.
	Buckets []float64
	// ExcludePaths lists route templates that must never be instrumented.
	ExcludePaths []string
	// ServiceLabel is stamped on every series as the "service" const label.
	ServiceLabel string
}

// Metrics owns the HTTP traffic collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry
	service  string
	excluded map[string]struct{}

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorsTotal     *prometheus.CounterVec
	inFlight        *prometheus.GaugeVec
}

// New builds the metric set described by cfg.
func New(cfg Config) *Metrics {
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = DefaultBuckets
	}

	var constLabels prometheus.Labels
	if cfg.ServiceLabel != "" {
		constLabels = prometheus.Labels{"service": cfg.ServiceLabel}
	}

	excluded := make(map[string]struct{}, len(cfg.ExcludePaths))
	for _, p := range cfg.ExcludePaths {
		excluded[p] = struct{}{}
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		service:  cfg.ServiceLabel,
		excluded: excluded,

		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     buckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),

		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_errors_total",
				Help:        "Total HTTP error responses (4xx and 5xx)",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),

		inFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "HTTP requests currently being handled",
				ConstLabels: constLabels,
			},
			[]string{"route"},
		),
	}
}

// Excluded reports whether a path must never be instrumented.
func (m *Metrics) Excluded(path string) bool {
	_, ok := m.excluded[path]
	return ok
}

// RecordRequestStart marks one request as in flight for the given route.
// Every call must be paired with exactly one RecordRequestEnd.
func (m *Metrics) RecordRequestStart(route string) {
	m.inFlight.WithLabelValues(route).Inc()
}

// RecordRequestEnd finalizes accounting for one request: one counter
// increment, one duration observation, and the matching in-flight release.
// Error responses (4xx/5xx) additionally feed the error counter.
func (m *Metrics) RecordRequestEnd(method, route, status string, seconds float64) {
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route, status).Observe(seconds)

	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		m.errorsTotal.WithLabelValues(method, route, status).Inc()
	}

	m.inFlight.WithLabelValues(route).Dec()
}

// Handler returns the Prometheus exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for custom collectors and tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TrafficSnapshot is a compact JSON view of the current HTTP metric state,
// consumed by the live traffic feed.
type TrafficSnapshot struct {
	Service       string      `json:"service"`
	GeneratedAt   time.Time   `json:"generated_at"`
	TotalRequests float64     `json:"total_requests"`
	TotalErrors   float64     `json:"total_errors"`
	InFlight      float64     `json:"in_flight"`
	Routes        []RouteStat `json:"routes"`
}

// RouteStat aggregates one {method, route, status} series.
type RouteStat struct {
	Method     string  `json:"method"`
	Route      string  `json:"route"`
	Status     string  `json:"status"`
	Count      float64 `json:"count"`
	AvgSeconds float64 `json:"avg_seconds"`
}

type seriesKey struct {
	method string
	route  string
	status string
}

// Snapshot gathers the registry into a TrafficSnapshot. Rows are sorted by
// route, method, status so consecutive snapshots diff cleanly.
func (m *Metrics) Snapshot() (*TrafficSnapshot, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	durSum := make(map[seriesKey]float64)
	durCount := make(map[seriesKey]uint64)

	for _, mf := range families {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			k := metricKey(metric)
			h := metric.GetHistogram()
			durSum[k] = h.GetSampleSum()
			durCount[k] = h.GetSampleCount()
		}
	}

	snap := &TrafficSnapshot{
		Service:     m.service,
		GeneratedAt: time.Now().UTC(),
	}

	for _, mf := range families {
		switch mf.GetName() {
		case "http_requests_total":
			for _, metric := range mf.GetMetric() {
				k := metricKey(metric)
				count := metric.GetCounter().GetValue()
				snap.TotalRequests += count

				row := RouteStat{
					Method: k.method,
					Route:  k.route,
					Status: k.status,
					Count:  count,
				}
				if n := durCount[k]; n > 0 {
					row.AvgSeconds = durSum[k] / float64(n)
				}
				snap.Routes = append(snap.Routes, row)
			}
		case "http_errors_total":
			for _, metric := range mf.GetMetric() {
				snap.TotalErrors += metric.GetCounter().GetValue()
			}
		case "http_requests_in_flight":
			for _, metric := range mf.GetMetric() {
				snap.InFlight += metric.GetGauge().GetValue()
			}
		}
	}

	sort.Slice(snap.Routes, func(i, j int) bool {
		a, b := snap.Routes[i], snap.Routes[j]
		if a.Route != b.Route {
			return a.Route < b.Route
		}
		if a.Method != b.Method {
			return a.Method < b.Method
		}
		return a.Status < b.Status
	})

	return snap, nil
}

func metricKey(metric *dto.Metric) seriesKey {
	var k seriesKey
	for _, lp := range metric.GetLabel() {
		switch lp.GetName() {
		case "method":
			k.method = lp.GetValue()
		case "route":
			k.route = lp.GetValue()
		case "status":
			k.status = lp.GetValue()
		}
	}
	return k
}
