// Package config provides configuration management for the gateway.
// Settings are loaded from environment variables with sensible defaults;
// a .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration settings for the gateway.
type Config struct {
	// Server settings
	HTTPPort     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Shutdown
	ShutdownTimeout time.Duration

	// Upstream services
	AuthServiceAddr    string
	ProductServiceAddr string

	// Authentication gate
	VerifyTimeout time.Duration
	CookieName    string
	CookieMaxAge  time.Duration
	CookieSecure  bool

	// Environment is the deployment environment (local, staging, production).
	Environment string

	// Observability
	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
	MetricsPath    string

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		HTTPPort:           8080,
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		IdleTimeout:        120 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		AuthServiceAddr:    "localhost:50051",
		ProductServiceAddr: "localhost:50052",
		VerifyTimeout:      5 * time.Second,
		CookieName:         "token",
		CookieMaxAge:       24 * time.Hour,
		CookieSecure:       true,
		Environment:        "production",
		LogLevel:           "info",
		LogFormat:          "json",
		MetricsEnabled:     true,
		MetricsPath:        "/metrics",
		CORSAllowOrigins:   []string{"*"},
		RateLimitEnabled:   false,
		RateLimitRPS:       100,
		RateLimitBurst:     200,
	}
}

// Load builds a Config from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	cfg.HTTPPort = getEnvInt("PORT", cfg.HTTPPort)
	cfg.ReadTimeout = getEnvDuration("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvDuration("WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.IdleTimeout = getEnvDuration("IDLE_TIMEOUT", cfg.IdleTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	cfg.AuthServiceAddr = getEnvOrDefault("AUTH_SERVICE_ADDR", cfg.AuthServiceAddr)
	cfg.ProductServiceAddr = getEnvOrDefault("PRODUCT_SERVICE_ADDR", cfg.ProductServiceAddr)

	cfg.VerifyTimeout = getEnvDuration("VERIFY_TIMEOUT", cfg.VerifyTimeout)
	cfg.CookieName = getEnvOrDefault("COOKIE_NAME", cfg.CookieName)
	cfg.CookieMaxAge = getEnvDuration("COOKIE_MAX_AGE", cfg.CookieMaxAge)

	cfg.Environment = getEnvOrDefault("ENVIRONMENT", cfg.Environment)
	// Plaintext local deployments cannot set Secure cookies.
	cfg.CookieSecure = getEnvBool("COOKIE_SECURE", cfg.Environment != "local")

	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.MetricsEnabled = getEnvBool("METRICS_ENABLED", cfg.MetricsEnabled)
	cfg.MetricsPath = getEnvOrDefault("METRICS_PATH", cfg.MetricsPath)

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORSAllowOrigins = splitAndTrim(origins)
	}

	cfg.RateLimitEnabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.RateLimitEnabled)
	cfg.RateLimitRPS = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validatePort(c.HTTPPort, "HTTPPort"); err != nil {
		return err
	}
	if c.AuthServiceAddr == "" {
		return fmt.Errorf("AuthServiceAddr must not be empty")
	}
	if c.ProductServiceAddr == "" {
		return fmt.Errorf("ProductServiceAddr must not be empty")
	}
	if c.VerifyTimeout <= 0 {
		return fmt.Errorf("VerifyTimeout must be positive, got %v", c.VerifyTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("ShutdownTimeout must be positive, got %v", c.ShutdownTimeout)
	}
	if c.CookieName == "" {
		return fmt.Errorf("CookieName must not be empty")
	}
	if c.CookieMaxAge <= 0 {
		return fmt.Errorf("CookieMaxAge must be positive, got %v", c.CookieMaxAge)
	}
	if c.RateLimitEnabled {
		if c.RateLimitRPS <= 0 {
			return fmt.Errorf("RateLimitRPS must be positive, got %v", c.RateLimitRPS)
		}
		if c.RateLimitBurst < 1 {
			return fmt.Errorf("RateLimitBurst must be at least 1, got %d", c.RateLimitBurst)
		}
	}
	return nil
}

// String returns a string representation of the config (without sensitive data).
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{HTTPPort: %d, AuthServiceAddr: %s, ProductServiceAddr: %s, Environment: %s, LogLevel: %s, MetricsEnabled: %t, RateLimitEnabled: %t}",
		c.HTTPPort, c.AuthServiceAddr, c.ProductServiceAddr, c.Environment, c.LogLevel, c.MetricsEnabled, c.RateLimitEnabled,
	)
}

// splitAndTrim splits a comma-separated list and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func validatePort(port int, name string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", name, port)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a boolean or a default.
// Accepts "true", "1", "yes", "on" (case-insensitive) as true values.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvInt returns the environment variable as an int or a default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvFloat returns the environment variable as a float64 or a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// getEnvDuration returns the environment variable as a duration or a default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
