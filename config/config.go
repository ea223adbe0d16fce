package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultPageSpeedURL is the PageSpeed Insights v5 audit endpoint.
const DefaultPageSpeedURL = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Provider  ProviderConfig
	Auth      AuthConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// ProviderConfig describes the external analysis provider.
// It is read once at startup and never mutated afterwards.
type ProviderConfig struct {
	// Endpoint is the runPagespeed URL. Overridable for testing.
	Endpoint string

	// APIKey is sent as the "key" query parameter when non-empty.
	// Without it the provider still answers, under a lower quota.
	APIKey string
}

// AuthConfig controls API key authentication on the analyze endpoint.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	APIKeys []string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// TelemetryConfig controls error reporting and tracing exporters.
// Both are disabled when their endpoint is empty.
type TelemetryConfig struct {
	ServiceName  string // default: "vitals"
	SentryDSN    string
	OTLPEndpoint string // e.g. "http://otel-collector:4318"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("VITALS_HOST", "0.0.0.0"),
			Port: envIntOr("VITALS_PORT", 8080),
			Mode: envOr("VITALS_MODE", "release"),
		},
		Provider: ProviderConfig{
			Endpoint: envOr("PAGESPEED_API_URL", DefaultPageSpeedURL),
			APIKey:   os.Getenv("PAGESPEED_API_KEY"),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("VITALS_AUTH_ENABLED", false),
			APIKeys: envSliceOr("VITALS_API_KEYS", nil),
		},
		Log: LogConfig{
			Level:  envOr("VITALS_LOG_LEVEL", "info"),
			Format: envOr("VITALS_LOG_FORMAT", "json"),
		},
		Telemetry: TelemetryConfig{
			ServiceName:  envOr("VITALS_SERVICE_NAME", "vitals"),
			SentryDSN:    os.Getenv("VITALS_SENTRY_DSN"),
			OTLPEndpoint: os.Getenv("VITALS_OTLP_ENDPOINT"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
