package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultAllowedOrigin is the production registration frontend
const DefaultAllowedOrigin = "https://www.coopebred.com"

// CORSConfig is the cross-origin policy applied to every route.
// An AllowedOrigins entry of "*" allows any origin.
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowedOrigins"`
	AllowedMethods   []string `yaml:"allowedMethods"`
	AllowedHeaders   []string `yaml:"allowedHeaders"`
	ExposedHeaders   []string `yaml:"exposedHeaders"`
	AllowCredentials bool     `yaml:"allowCredentials"`
	MaxAge           int      `yaml:"maxAge"`
}

type corsFile struct {
	CORS CORSConfig `yaml:"cors"`
}

// DefaultCORSConfig builds the CORS policy from CORS_* environment variables
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins:   splitList(GetEnvOrDefault("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigin)),
		AllowedMethods:   splitList(GetEnvOrDefault("CORS_ALLOWED_METHODS", "GET,POST")),
		AllowedHeaders:   splitList(GetEnvOrDefault("CORS_ALLOWED_HEADERS", "Content-Type,Authorization")),
		ExposedHeaders:   splitList(os.Getenv("CORS_EXPOSED_HEADERS")),
		AllowCredentials: os.Getenv("CORS_ALLOW_CREDENTIALS") == "true",
		MaxAge:           parseIntOrDefault("CORS_MAX_AGE", 86400),
	}
}

// LoadCORSConfig loads the CORS policy from a YAML file layered over the
// environment defaults. An empty path or a missing file yields the defaults.
func LoadCORSConfig(path string) (*CORSConfig, error) {
	defaults := DefaultCORSConfig()
	if path == "" {
		return &defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("CORS config file not found, using defaults", "path", path)
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to read CORS config file %s: %w", path, err)
	}

	var file corsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse CORS config file %s: %w", path, err)
	}

	cfg := file.CORS
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = defaults.AllowedOrigins
	}
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = defaults.AllowedMethods
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = defaults.AllowedHeaders
	}
	if len(cfg.ExposedHeaders) == 0 {
		cfg.ExposedHeaders = defaults.ExposedHeaders
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = defaults.MaxAge
	}
	return &cfg, nil
}

// AllowsAnyOrigin reports whether the policy is unrestricted
func (c CORSConfig) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// MaxAgeHeader returns MaxAge formatted for Access-Control-Max-Age
func (c CORSConfig) MaxAgeHeader() string {
	return strconv.Itoa(c.MaxAge)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
