package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config carries the client's environment configuration. Values come
// from env vars, with godotenv loading .env in main.
type Config struct {
	Environment string
	LogLevel    slog.Level

	// Narrative backend
	Provider     string // "gemini" or "openai"
	GeminiAPIKey string
	OpenAIAPIKey string

	// Campaign persistence
	RedisURL string
}

func Load() *Config {
	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Provider:     getEnv("NARRATIVE_PROVIDER", "gemini"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
