package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL          string
	JWTSecret            string
	JWTExpiration        time.Duration
	ServerPort           string
	LogFile              string
	Debug                bool
	DefaultRequiredHours float64
}

func Load() *Config {
	return &Config{
		DatabaseURL:          getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/internhours"),
		JWTSecret:            getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration:        24 * time.Hour,
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		LogFile:              getEnv("LOG_FILE", ""),
		Debug:                getEnv("DEBUG", "") != "",
		DefaultRequiredHours: getEnvFloat("DEFAULT_REQUIRED_HOURS", 500),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
