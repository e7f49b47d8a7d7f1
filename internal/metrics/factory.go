package metrics

// NewCollector returns a PrometheusCollector when enabled, NopCollector otherwise
func NewCollector(enabled bool, namespace string) (Collector, error) {
	if !enabled {
		return NewNopCollector(), nil
	}

	collector, err := NewPrometheusCollector(namespace)
	if err != nil {
		return nil, err
	}
	return collector, nil
}
