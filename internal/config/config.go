package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite (default), postgres or mysql
	DatabasePath   string // sqlite only
	DatabaseURL    string // postgres/mysql connection string
	MigrationsPath string

	// Reminder emails (AWS SES). Leaving SESFromEmail empty disables sending.
	AWSRegion        string
	SESFromEmail     string
	SESFromName      string
	ReminderInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file is applied first when present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		ServerPort:       getEnv("PORT", "8080"),
		DatabaseType:     getEnv("DB_TYPE", "sqlite"),
		DatabasePath:     getEnv("DB_PATH", "./hangman.db"),
		DatabaseURL:      getEnv("DB_URL", ""),
		MigrationsPath:   getEnv("MIGRATIONS_PATH", "./migrations"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:     getEnv("SES_FROM_EMAIL", ""),
		SESFromName:      getEnv("SES_FROM_NAME", "Hangman"),
		ReminderInterval: getDuration("REMINDER_INTERVAL", time.Hour),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
