package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	GitHub  GitHubConfig  `yaml:"github"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	ReadTimeout  time.Duration `yaml:"readTimeout" env:"SERVER_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" env:"SERVER_WRITE_TIMEOUT" env-default:"90s"`
	IdleTimeout  time.Duration `yaml:"idleTimeout" env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`

	// ShutdownTimeout bounds how long in-flight requests get on SIGTERM
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`

	// Mode is the gin mode: debug, release or test
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"release"`

	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// GitHubConfig holds upstream GitHub API configuration
type GitHubConfig struct {
	// Token is optional; without it GitHub applies the anonymous rate limit
	Token    string        `yaml:"token" env:"GITHUB_API_TOKEN"`
	BaseURL  string        `yaml:"baseURL" env:"GITHUB_API_URL" env-default:"https://api.github.com/"`
	PageSize int           `yaml:"pageSize" env:"GITHUB_PAGE_SIZE" env-default:"50"`
	Timeout  time.Duration `yaml:"timeout" env:"GITHUB_TIMEOUT" env-default:"30s"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format     string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	Output     string `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr"`
	FilePath   string `yaml:"filePath" env:"LOG_FILE_PATH" env-default:"/var/log/repo-gateway.log"`
	MaxSize    int    `yaml:"maxSize" env:"LOG_MAX_SIZE" env-default:"100"`
	MaxBackups int    `yaml:"maxBackups" env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `yaml:"maxAge" env:"LOG_MAX_AGE" env-default:"7"`
	Compress   bool   `yaml:"compress" env:"LOG_COMPRESS" env-default:"true"`
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path      string `yaml:"path" env:"METRICS_PATH" env-default:"/metrics"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"repo_gateway"`
}

// TracingConfig holds OpenTelemetry configuration
type TracingConfig struct {
	Enabled      bool          `yaml:"enabled" env:"TRACING_ENABLED" env-default:"false"`
	Endpoint     string        `yaml:"endpoint" env:"TRACING_ENDPOINT" env-default:"localhost:4318"`
	Insecure     bool          `yaml:"insecure" env:"TRACING_INSECURE" env-default:"false"`
	SamplingRate float64       `yaml:"samplingRate" env:"TRACING_SAMPLING_RATE" env-default:"1.0"`
	ServiceName  string        `yaml:"serviceName" env:"TRACING_SERVICE_NAME" env-default:"repo-gateway"`
	Environment  string        `yaml:"environment" env:"TRACING_ENVIRONMENT" env-default:"production"`
	Timeout      time.Duration `yaml:"timeout" env:"TRACING_TIMEOUT" env-default:"10s"`
}

// Load loads configuration from environment variables and, when path is
// not empty, from a YAML file. Environment variables win over the file.
func Load(path string) (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	config := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a number between 1 and 65535, got %q", c.Server.Port)
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.Server.Mode)
	}

	if c.GitHub.PageSize < 1 || c.GitHub.PageSize > 100 {
		return fmt.Errorf("GITHUB_PAGE_SIZE must be between 1 and 100, got %d", c.GitHub.PageSize)
	}

	u, err := url.Parse(c.GitHub.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("GITHUB_API_URL must be an absolute HTTP(S) URL, got %q", c.GitHub.BaseURL)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with '/', got %q", c.Metrics.Path)
	}

	if c.Tracing.SamplingRate < 0 || c.Tracing.SamplingRate > 1 {
		return fmt.Errorf("TRACING_SAMPLING_RATE must be within [0, 1], got %v", c.Tracing.SamplingRate)
	}

	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// HasGitHubToken returns true if an upstream token is configured
func (c *Config) HasGitHubToken() bool {
	return c.GitHub.Token != ""
}
