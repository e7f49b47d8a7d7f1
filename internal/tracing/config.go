package tracing

import (
	"errors"
	"fmt"
	"time"
)

// Config holds OpenTelemetry exporter settings
type Config struct {
	Enabled      bool
	Endpoint     string
	Insecure     bool
	SamplingRate float64
	ServiceName  string
	Version      string
	Environment  string
	Timeout      time.Duration
}

// Validate checks the settings that matter when tracing is enabled
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("tracing endpoint is required when tracing is enabled")
	}
	if c.ServiceName == "" {
		return errors.New("tracing service name is required when tracing is enabled")
	}
	if c.SamplingRate < 0 || c.SamplingRate > 1 {
		return fmt.Errorf("tracing sampling rate must be within [0, 1], got %v", c.SamplingRate)
	}
	return nil
}
