// Package config loads the application configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the task tracker backend.
type Config struct {
	// HTTP
	Port        string
	CORSOrigins []string

	// Database (PostgreSQL)
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	RunMigrations bool

	// Cache (Redis)
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// Session tokens
	JWTSecret   string
	TokenExpiry time.Duration

	// Auth route rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads a .env file if present, then builds the configuration from
// environment variables with sensible development defaults.
func Load() *Config {
	// Best effort: in production the environment is set by the platform
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded configuration from .env")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "task_tracker"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RunMigrations: getEnv("RUN_MIGRATIONS", "") == "true",

		RedisAddr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      getDurationEnv("CACHE_TTL", time.Hour),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		TokenExpiry: getDurationEnv("JWT_EXPIRY", 30*24*time.Hour),

		RateLimitMax:    getIntEnv("RATE_LIMIT_MAX", 20),
		RateLimitWindow: getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getIntEnv reads an integer from the environment, falling back to the
// default on absence or parse failure.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

// getDurationEnv reads a Go duration string (e.g. "1h", "720h") from the
// environment, falling back to the default on absence or parse failure.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}

// splitEnv reads a comma-separated environment variable into a slice.
func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
