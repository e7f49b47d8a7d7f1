package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusCollector implements Collector with a private Prometheus registry
type PrometheusCollector struct {
	registry *prometheus.Registry

	httpDuration     *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamCalls    *prometheus.CounterVec
}

// NewPrometheusCollector registers:
//   - <namespace>_http_request_duration_seconds (histogram)
//   - <namespace>_http_requests_total (counter)
//   - <namespace>_upstream_call_duration_seconds (histogram)
//   - <namespace>_upstream_calls_total (counter)
//
// plus the Go runtime and process collectors.
func NewPrometheusCollector(namespace string) (*PrometheusCollector, error) {
	registry := prometheus.NewRegistry()

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// Star aggregation walks every page, so the upper buckets are wide
	upstreamDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Duration of calls to the upstream platform in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation", "outcome"},
	)

	upstreamCalls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Total number of calls to the upstream platform",
		},
		[]string{"operation", "outcome"},
	)

	toRegister := []prometheus.Collector{
		httpDuration,
		httpRequests,
		upstreamDuration,
		upstreamCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return &PrometheusCollector{
		registry:         registry,
		httpDuration:     httpDuration,
		httpRequests:     httpRequests,
		upstreamDuration: upstreamDuration,
		upstreamCalls:    upstreamCalls,
	}, nil
}

// maxLabelLength caps label values to keep cardinality bounded
const maxLabelLength = 128

// sanitizeLabel replaces control characters and truncates by rune
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

func (c *PrometheusCollector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	labels := []string{sanitizeLabel(method), sanitizeLabel(route), strconv.Itoa(status)}

	c.httpDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	c.httpRequests.WithLabelValues(labels...).Inc()
}

func (c *PrometheusCollector) ObserveUpstreamCall(operation, outcome string, duration time.Duration) {
	operation = sanitizeLabel(operation)
	outcome = sanitizeLabel(outcome)

	c.upstreamDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
	c.upstreamCalls.WithLabelValues(operation, outcome).Inc()
}

func (c *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// GetRegistry returns the registry, for tests
func (c *PrometheusCollector) GetRegistry() *prometheus.Registry {
	return c.registry
}
