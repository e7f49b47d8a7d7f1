// Package metrics records HTTP and upstream call metrics.
//
// PrometheusCollector is the active implementation; NopCollector is used
// when metrics are disabled and in tests.
package metrics

import (
	"net/http"
	"time"
)

// Upstream call outcomes that are not an error kind
const (
	OutcomeSuccess = "success"
)

// Collector records metrics for the gateway
type Collector interface {
	// ObserveHTTPRequest records one served HTTP request. route is the
	// registered route pattern, not the raw path.
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)

	// ObserveUpstreamCall records one call to the upstream platform.
	// outcome is OutcomeSuccess or an error kind.
	ObserveUpstreamCall(operation, outcome string, duration time.Duration)

	// Handler serves the metrics exposition
	Handler() http.Handler
}
