package logging

// Supported output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Supported levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Supported outputs.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Config holds logger settings. Rotation fields only apply to OutputFile.
type Config struct {
	Format string
	Level  string
	Output string

	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultConfig returns a Config that writes text logs at info level to stderr
func DefaultConfig() Config {
	return Config{
		Format:     FormatText,
		Level:      LevelInfo,
		Output:     OutputStderr,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}
}
