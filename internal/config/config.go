// Package config loads the registration gateway configuration from the
// environment. A .env file is honoured when present.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the gateway configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	CORS     CORSConfig
	LogLevel slog.Level
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// StoreConfig selects and configures the remote data store
type StoreConfig struct {
	Driver string

	// REST (Supabase / PostgREST)
	URL     string
	Key     string
	Timeout time.Duration

	// Direct database access
	DatabaseURL     string
	SQLitePath      string
	RunMigration    bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Addr returns the listen address for the HTTP server
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

// Load builds the configuration from environment variables.
// It fails when values required by the selected store driver are missing.
func Load() (*Config, error) {
	// Load .env file if it exists (optional - fails silently if not found)
	_ = godotenv.Load()

	port := GetEnvOrDefault("PORT", "5000")
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
	}

	cors, err := LoadCORSConfig(os.Getenv("CORS_CONFIG_PATH"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            port,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: parseDurationOrDefault("SHUTDOWN_TIMEOUT", "30s"),
		},
		Store: StoreConfig{
			Driver:          strings.ToLower(GetEnvOrDefault("STORE_DRIVER", DriverREST)),
			URL:             strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
			Key:             os.Getenv("SUPABASE_KEY"),
			Timeout:         parseDurationOrDefault("STORE_TIMEOUT", "10s"),
			DatabaseURL:     os.Getenv("SUPABASE_DB_URL"),
			SQLitePath:      GetEnvOrDefault("SQLITE_PATH", "registro.db"),
			RunMigration:    os.Getenv("RUN_MIGRATION") == "true",
			MaxOpenConns:    parseIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    parseIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: parseDurationOrDefault("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: parseDurationOrDefault("DB_CONN_MAX_IDLE_TIME", "30m"),
		},
		CORS:     *cors,
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
	}

	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings required by the selected driver are present
func (c StoreConfig) Validate() error {
	switch c.Driver {
	case DriverREST:
		if c.URL == "" || c.Key == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("SUPABASE_DB_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=%s", DriverSQLite)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (valid: %s, %s, %s)", c.Driver, DriverREST, DriverPostgres, DriverSQLite)
	}
	return nil
}

// GetEnvOrDefault returns the environment variable value or a default
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses an integer from environment variable or returns default
func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		slog.Warn("Ignoring invalid integer setting", "key", key, "value", value)
	}
	return defaultValue
}

// parseDurationOrDefault parses a duration from environment variable or returns default
func parseDurationOrDefault(key, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		slog.Warn("Ignoring invalid duration setting", "key", key, "value", value)
	}
	parsed, err := time.ParseDuration(defaultValue)
	if err != nil {
		return time.Minute
	}
	return parsed
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
