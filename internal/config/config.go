package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production

	// Database. Empty in development selects the in-memory user store.
	DatabaseURL      string
	DatabaseMaxConns int32

	// GitHub OAuth
	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string

	// Session
	SessionSecret string
	SessionMaxAge time.Duration

	// Where signed-in users are sent after login.
	AfterLoginURL string

	// Tracing. Empty endpoint disables export.
	OTLPEndpoint    string
	OTLPInsecure    bool
	OTelServiceName string
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	env := &envReader{}

	cfg := &Config{
		Port:        env.get("PORT", "8080"),
		BaseURL:     strings.TrimRight(env.get("BASE_URL", "http://localhost:8080"), "/"),
		Environment: env.get("ENVIRONMENT", "development"),

		DatabaseURL:      env.get("DATABASE_URL", ""),
		DatabaseMaxConns: 10,

		GitHubClientID:     env.require("GITHUB_CLIENT_ID"),
		GitHubClientSecret: env.require("GITHUB_CLIENT_SECRET"),

		SessionSecret: env.require("SESSION_SECRET"),
		SessionMaxAge: 7 * 24 * time.Hour, // 1 week

		AfterLoginURL: env.get("AFTER_LOGIN_URL", "/"),

		OTLPEndpoint:    env.get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPInsecure:    env.get("OTEL_EXPORTER_OTLP_INSECURE", "false") == "true",
		OTelServiceName: env.get("OTEL_SERVICE_NAME", "concensor"),
	}

	cfg.GitHubCallbackURL = cfg.BaseURL + "/auth/callback"

	switch cfg.Environment {
	case "development", "staging", "production":
	default:
		return nil, fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", cfg.Environment)
	}

	if cfg.DatabaseURL == "" && !cfg.IsDevelopment() {
		env.missing = append(env.missing, "DATABASE_URL")
	}

	if len(env.missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %s", strings.Join(env.missing, ", "))
	}

	if err := checkAfterLoginURL(cfg.AfterLoginURL, cfg.BaseURL); err != nil {
		return nil, err
	}

	// Validate session secret length (need 64 bytes for hash key + block key)
	if len(cfg.SessionSecret) < 64 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(cfg.SessionSecret))
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// checkAfterLoginURL rejects targets that point back at the login page:
// signed-in users are redirected away from /login, so they would loop.
func checkAfterLoginURL(target, baseURL string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("AFTER_LOGIN_URL is not a valid URL: %w", err)
	}

	if u.Host != "" {
		base, err := url.Parse(baseURL)
		if err != nil || !strings.EqualFold(u.Host, base.Host) {
			return nil
		}
	}

	if strings.TrimRight(u.Path, "/") == "/login" {
		return fmt.Errorf("AFTER_LOGIN_URL must not point at the login page, got %q", target)
	}
	return nil
}

// envReader collects the names of missing required variables so they can
// be reported together.
type envReader struct {
	missing []string
}

func (e *envReader) get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (e *envReader) require(key string) string {
	value := os.Getenv(key)
	if value == "" {
		e.missing = append(e.missing, key)
	}
	return value
}
