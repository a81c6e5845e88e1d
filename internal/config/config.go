package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	TokenSecret string
	ServerPort  string
	Environment string

	// SessionTTL bounds the lifetime of an access token from sign-in
	SessionTTL time.Duration

	// QuestionCacheTTL bounds how long the question listing is served from Redis
	QuestionCacheTTL time.Duration
}

func Load() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	// (containers use environment variables directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		TokenSecret:      os.Getenv("TOKEN_SECRET"),
		ServerPort:       getEnv("SERVER_PORT", ":8080"),
		Environment:      os.Getenv("ENVIRONMENT"),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", "8h"),
		QuestionCacheTTL: getEnvAsDuration("QUESTION_CACHE_TTL", "1m"),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.TokenSecret == "" {
		log.Fatal("TOKEN_SECRET is required")
	}

	return cfg
}

// getEnv retrieves environment variable with default value
func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvAsDuration retrieves environment variable as duration with default value
func getEnvAsDuration(key string, defaultVal string) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		valStr = defaultVal
	}
	duration, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid %s value, using default: %s", key, defaultVal)
		duration, _ = time.ParseDuration(defaultVal)
	}
	return duration
}
