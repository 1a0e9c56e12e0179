package app

import (
	"os"
	"strconv"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/mail"
)

type Config struct {
	AuthSecret string // Required: shared HS256 secret for verifying identity tokens

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./workspace.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	InviteTTL            time.Duration // Invitation validity window (default: 168h)
	InviteRetention      time.Duration // How long expired invitations are kept (default: 720h)

	BaseURL string          // Public base URL used in invitation links
	SMTP    mail.SMTPConfig // Empty host disables email delivery
}

func LoadConfig() Config {
	cfg := Config{
		AuthSecret: os.Getenv("WORKSPACE_AUTH_SECRET"),
		DatabaseFile: getEnvOrDefault(
			"WORKSPACE_DATABASE_FILE",
			"workspace.db",
		),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		InviteTTL:            getEnvDurationOrDefault("INVITE_TTL", 7*24*time.Hour),
		InviteRetention:      getEnvDurationOrDefault("INVITE_RETENTION", 30*24*time.Hour),
		BaseURL:              getEnvOrDefault("APP_BASE_URL", "http://localhost:8080"),
	}

	cfg.SMTP = mail.SMTPConfig{
		Host:      os.Getenv("SMTP_HOST"),
		Port:      getEnvIntOrDefault("SMTP_PORT", 587),
		Username:  os.Getenv("SMTP_USERNAME"),
		Password:  os.Getenv("SMTP_PASSWORD"),
		FromEmail: getEnvOrDefault("SMTP_FROM_EMAIL", "no-reply@rexa.ai"),
		FromName:  getEnvOrDefault("SMTP_FROM_NAME", "Rexa"),
		BaseURL:   cfg.BaseURL,
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
