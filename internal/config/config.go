package config

import (
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL      string
	JWTSecret        string
	PerplexityAPIKey string
	SentryDSN        string
	Port             string
	UploadDir        string
	DemoUserID       uint // user whose profile backs GET /api/profile
}

func Load() *Config {
	return &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		PerplexityAPIKey: os.Getenv("PERPLEXITY_API_KEY"),
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		Port:             getEnv("PORT", "3000"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		DemoUserID:       getEnvUint("DEMO_USER_ID", 5),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvUint(key string, fallback uint) uint {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(parsed)
}
