// Package config provides configuration management for the loan planner.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration, loaded from the environment with an
// optional .env file.
type Config struct {
	Port            int
	RedisAddr       string // empty selects the in-process cache
	LogLevel        string // debug, info, warn, error
	PrettyLogs      bool
	RateLimitBurst  int
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	return &Config{
		Port:            port,
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		PrettyLogs:      getEnv("PRETTY_LOGS", "false") == "true",
		RateLimitBurst:  burst,
		RateLimitWindow: window,
	}, nil
}

// getEnv retrieves an environment variable, returning fallback when unset or
// empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
