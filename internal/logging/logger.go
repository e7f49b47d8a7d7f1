// Package logging provides the structured logger used across the gateway.
package logging

// Logger is a leveled, structured logger. Arguments after the message are
// key-value pairs:
//
//	logger.Info("request served", "status", 200, "latency_ms", 12)
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a Logger that adds args to every record
	With(args ...any) Logger
}
