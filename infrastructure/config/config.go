// Package config loads client configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	// Backend
	BaseURL     string
	HTTPTimeout time.Duration

	// Outbound request pacing. A burst of zero disables the throttle.
	RequestBurst    int
	RequestInterval time.Duration

	// Session token persistence
	TokenPath string

	// Environment and logging
	Environment string
	LogLevel    string
}

// LoadConfig loads configuration from environment variables. A .env file
// in the working directory is read first when present; real environment
// variables win over it.
func LoadConfig() (*Config, error) {
	// godotenv does not override variables that are already set.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:         getEnv("RECIPE_BASE_URL", "http://localhost:8080"),
		HTTPTimeout:     getEnvDuration("RECIPE_HTTP_TIMEOUT", 15*time.Second),
		RequestBurst:    getEnvInt("RECIPE_REQUEST_BURST", 8),
		RequestInterval: getEnvDuration("RECIPE_REQUEST_INTERVAL", 125*time.Millisecond),
		TokenPath:       getEnv("RECIPE_TOKEN_PATH", defaultTokenPath()),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("RECIPE_BASE_URL is required")
	}
	if c.TokenPath == "" {
		return fmt.Errorf("RECIPE_TOKEN_PATH is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("RECIPE_HTTP_TIMEOUT must be positive")
	}
	if c.RequestBurst > 0 && c.RequestInterval <= 0 {
		return fmt.Errorf("RECIPE_REQUEST_INTERVAL must be positive when throttling is enabled")
	}
	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "recipeclient", "token")
	}
	return filepath.Join(home, ".recipeclient", "token")
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return n
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable. Plain integers are
// treated as seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
