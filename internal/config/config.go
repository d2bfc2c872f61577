// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server will bind to.
	ServerHost string
	// ServerPort is the port number the API server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// DetectorBaseURL is the base address of the local PII detection service.
	DetectorBaseURL string
	// DetectorTimeout is the per-request timeout for detection service calls.
	DetectorTimeout time.Duration
	// DetectorAllowRemote permits a non-loopback detector address. Sensitive
	// document text is posted to the detector, so remote addresses are refused
	// unless this is explicitly enabled.
	DetectorAllowRemote bool

	// DeepScanEnabled selects whether the detector's heavier language-model
	// pass runs by default. Individual operations may override it.
	DeepScanEnabled bool

	// HealthCheckInterval is the polling interval of the detector health monitor.
	HealthCheckInterval time.Duration

	// RedactedOutputPath is the directory where redacted artifacts are written.
	RedactedOutputPath string
	// RestoredOutputPath is the directory where restored artifacts are written.
	RestoredOutputPath string
	// MapStoragePath is the directory where token map files are stored.
	MapStoragePath string

	// DBConnectionString is the SQLite connection string for the operation log.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// RateLimitEnabled indicates whether rate limiting for API endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for API rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "127.0.0.1"),
		ServerPort: env.GetInt("SERVER_PORT", 8460),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Detection service
		DetectorBaseURL:     env.GetString("DETECTOR_BASE_URL", "http://localhost:8765"),
		DetectorTimeout:     env.GetDuration("DETECTOR_TIMEOUT_SECONDS", 120, time.Second),
		DetectorAllowRemote: env.GetBool("DETECTOR_ALLOW_REMOTE", false),
		DeepScanEnabled:     env.GetBool("DEEP_SCAN_ENABLED", false),
		HealthCheckInterval: env.GetDuration("HEALTH_CHECK_INTERVAL_SECONDS", 15, time.Second),

		// Storage paths
		RedactedOutputPath: env.GetString("REDACTED_OUTPUT_PATH", "data/redacted"),
		RestoredOutputPath: env.GetString("RESTORED_OUTPUT_PATH", "data/restored"),
		MapStoragePath:     env.GetString("MAP_STORAGE_PATH", "data/maps"),

		// Operation log database
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", "data/redactor.db"),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 1),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 1),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Rate Limiting (local API)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", false),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS (the host application may call the API from webview contexts)
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "redactor"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8461),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
