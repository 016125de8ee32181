package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBUrl        string
	APIBaseURL   string
	GeminiAPIKey string
	GeminiModel  string
	AppEnv       string
	LogLevel     string
	SentryDSN    string
	CookieSecure bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl, exists := os.LookupEnv("DB_URL")
	if !exists || dbUrl == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	return &Config{
		Port:         getEnv("PORT", "3000"),
		DBUrl:        dbUrl,
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-lite"),
		AppEnv:       normalizeEnv(getEnv("APP_ENV", "production")),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SentryDSN:    getEnv("SENTRY_DSN", ""),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
