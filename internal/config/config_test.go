package config

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"parses zero", "TEST_INT_2", "0", 10, 0},
		{"uses default for empty", "TEST_INT_3", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_4", "abc", 10, 10},
		{"uses default for negative", "TEST_INT_5", "-5", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "SHUTDOWN_TIMEOUT_SECONDS", "MAX_BODY_BYTES", "RATE_LIMIT_PER_MINUTE", "REDIS_URL", "FRONTEND_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Port)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected 30s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("Expected 1 MiB body limit, got %d", cfg.MaxBodyBytes)
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Errorf("Expected 60 req/min, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.RedisURL != "" {
		t.Errorf("Expected Redis to be disabled by default, got %q", cfg.RedisURL)
	}
	if cfg.FrontendURL != "http://localhost:5173" {
		t.Errorf("Expected default frontend URL, got %q", cfg.FrontendURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("FRONTEND_URL", "*")

	cfg := Load()

	if cfg.Port != "9090" || cfg.RateLimitPerMinute != 0 || cfg.RedisURL != "redis://localhost:6379/0" || cfg.FrontendURL != "*" {
		t.Fatalf("Unexpected config: %+v", cfg)
	}
}
