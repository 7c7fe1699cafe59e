package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	// JawsDBURL, when set, replaces the discrete DB_* settings.
	JawsDBURL    string
	Port         string
	AppEnv       string
	LogLevel     string
	DBLogLevel   string
	DBMaxRetries int
	DBRetryDelay time.Duration
}

// LoadEnv reads .env when present and the process environment. A missing or
// unreadable .env is returned as the error alongside a usable ENV.
func LoadEnv() (ENV, error) {
	var loadErr error
	if err := godotenv.Load(".env"); err != nil {
		loadErr = fmt.Errorf("load .env: %w", err)
	}

	return ENV{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   getEnv("DB_PW", os.Getenv("DB_PASSWORD")),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       getEnv("DB_PORT", "3306"),
		JawsDBURL:    os.Getenv("JAWSDB_URL"),
		Port:         getEnv("APP_PORT", ":3001"),
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBLogLevel:   getEnv("DB_LOG_LEVEL", "silent"),
		DBMaxRetries: getEnvInt("DB_MAX_RETRIES", 10),
		DBRetryDelay: getEnvDuration("DB_RETRY_DELAY", 5*time.Second),
	}, loadErr
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
