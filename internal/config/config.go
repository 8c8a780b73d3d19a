// Package config provides environment-driven configuration for the storefront demo.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/metrics"
)

// defaultExcludePaths are never instrumented: the scrape endpoint must not
// feed its own series, and probe traffic would drown real requests on a
// quiet demo.
var defaultExcludePaths = []string{"/metrics", "/health", "/favicon.ico"}

// Config holds all application configuration values.
type Config struct {
	AppName      string
	AppEnv       string
	Host         string
	Port         string
	LogLevel     string
	LogFormat    string
	CORSOrigins  []string
	ServiceLabel string
	Buckets      []float64
	ExcludePaths []string
	LatencyScale float64
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; explicit
// environment always wins because godotenv never overwrites set variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppName:   envOrDefault("APP_NAME", "storefront"),
		AppEnv:    envOrDefault("APP_ENV", "local"),
		Host:      envOrDefault("HOST", "0.0.0.0"),
		Port:      envOrDefault("PORT", "8000"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	cfg.CORSOrigins = splitAndTrim(envOrDefault("CORS_ORIGINS", "*"))

	cfg.ServiceLabel = envOrDefault("SERVICE_LABEL", serviceLabel(cfg.AppName, cfg.AppEnv))

	buckets, err := parseBuckets(envOrDefault("METRICS_BUCKETS", ""))
	if err != nil {
		return nil, fmt.Errorf("METRICS_BUCKETS: %w", err)
	}
	cfg.Buckets = buckets

	cfg.ExcludePaths = append([]string(nil), defaultExcludePaths...)
	if raw := os.Getenv("METRICS_EXCLUDE_PATHS"); raw != "" {
		cfg.ExcludePaths = splitAndTrim(raw)
	}

	scale, err := parseScale(envOrDefault("LATENCY_SCALE", "1.0"))
	if err != nil {
		return nil, fmt.Errorf("LATENCY_SCALE: %w", err)
	}
	cfg.LatencyScale = scale

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got %q", c.LogFormat)
	}

	if c.ServiceLabel == "" {
		return fmt.Errorf("SERVICE_LABEL must not be empty")
	}

	for _, p := range c.ExcludePaths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("METRICS_EXCLUDE_PATHS entries must start with '/', got %q", p)
		}
	}

	return nil
}

// serviceLabel builds the "<name>--<env>" value the dashboards filter on,
// e.g. "storefront--local".
func serviceLabel(name, env string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")

	return slug + "--" + strings.ToLower(strings.TrimSpace(env))
}

// parseBuckets parses comma-separated histogram boundaries. An empty value
// selects metrics.DefaultBuckets. Boundaries must be positive and strictly
// increasing or downstream quantile queries silently misbehave.
func parseBuckets(raw string) ([]float64, error) {
	if raw == "" {
		return append([]float64(nil), metrics.DefaultBuckets...), nil
	}

	parts := splitAndTrim(raw)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no boundaries given")
	}

	buckets := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid boundary %q: %w", p, err)
		}

		if v <= 0 {
			return nil, fmt.Errorf("boundary %q must be positive", p)
		}
		buckets = append(buckets, v)
	}

	for i := 1; i < len(buckets); i++ {
		if buckets[i] <= buckets[i-1] {
			return nil, fmt.Errorf("boundaries must be strictly increasing, got %v after %v", buckets[i], buckets[i-1])
		}
	}

	return buckets, nil
}

// parseScale parses the latency multiplier; zero disables simulated latency.
func parseScale(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid scale %q: %w", raw, err)
	}

	if v < 0 {
		return 0, fmt.Errorf("scale must not be negative")
	}

	return v, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}

	return out
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
