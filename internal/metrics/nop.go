package metrics

import (
	"net/http"
	"time"
)

// NopCollector drops every observation
type NopCollector struct{}

func NewNopCollector() Collector {
	return NopCollector{}
}

func (NopCollector) ObserveHTTPRequest(string, string, int, time.Duration) {}

func (NopCollector) ObserveUpstreamCall(string, string, time.Duration) {}

func (NopCollector) Handler() http.Handler {
	return http.NotFoundHandler()
}
