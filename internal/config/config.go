package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port            string
	Env             string
	ShutdownTimeout time.Duration

	// Chat
	MaxBodyBytes int64

	// Rate limiting (requests per client IP per minute, 0 disables)
	RateLimitPerMinute int

	// Redis (optional, shares rate limit counters between instances)
	RedisURL string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Env:                getEnvOrDefault("ENV", "development"),
		ShutdownTimeout:    time.Duration(getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxBodyBytes:       int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 1<<20)),
		RateLimitPerMinute: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 60),
		RedisURL:           getEnvOrDefault("REDIS_URL", ""),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}
